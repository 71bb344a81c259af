//go:build integration

package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
	pgrepo "github.com/enterpriseland/assessment-service/internal/infrastructure/persistence/postgres"
	"github.com/enterpriseland/assessment-service/pkg/testutil"
)

var (
	analyst = model.Actor{ID: "analyst-1", Name: "Alex Chen"}
	manager = model.Actor{ID: "manager-1", Name: "Morgan Reyes"}
)

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "migrations")
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg := testutil.NewPostgresContainer(ctx, t)
	t.Cleanup(func() { pg.Cleanup(t) })

	pg.RunMigrations(t, migrationsDir())

	return pg.Pool
}

func newDraftAssessment(t *testing.T) model.Assessment {
	t.Helper()
	a, err := model.NewAssessment(
		"tenant-001", valueobject.AssessmentTypePartner, "partner-001", "",
		analyst, time.Now().UTC(),
	)
	require.NoError(t, err)
	return a.ClearEvents()
}

func TestAssessmentRepo_SaveFreshDraft(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewAssessmentRepo(pool)
	ctx := context.Background()

	// A brand-new draft carries no recommendations and no metrics; the
	// first insert must still satisfy the TEXT[] NOT NULL columns.
	draft := newDraftAssessment(t)
	require.NoError(t, repo.Save(ctx, draft))

	loaded, err := repo.FindByID(ctx, draft.TenantID(), draft.ID())
	require.NoError(t, err)

	assert.Equal(t, draft.ID(), loaded.ID())
	assert.Equal(t, valueobject.AssessmentStatusDraft, loaded.Status())
	assert.Equal(t, valueobject.DecisionBandUnset, loaded.DecisionBand())
	assert.Empty(t, loaded.Recommendations())
	assert.Empty(t, loaded.Metrics())
	assert.Equal(t, 1, loaded.Version())
}

func TestAssessmentRepo_ApprovalRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewAssessmentRepo(pool)
	engine := service.NewScoringEngine(service.DefaultThresholds())
	ctx := context.Background()
	now := time.Now().UTC()

	draft := newDraftAssessment(t)
	require.NoError(t, repo.Save(ctx, draft))

	// Score a metric, the way the use cases do: load, mutate, refresh, save.
	loaded, err := repo.FindByID(ctx, draft.TenantID(), draft.ID())
	require.NoError(t, err)
	metric, err := model.NewMetric(
		"liquidity", valueobject.MetricCategoryFinancial, 4, 5,
		"healthy current ratio", analyst, now,
	)
	require.NoError(t, err)
	scored, err := loaded.AddMetric(metric, now)
	require.NoError(t, err)
	scored = scored.RefreshCalculatedFields(engine, now)
	require.NoError(t, repo.Save(ctx, scored))

	// Submit.
	loaded, err = repo.FindByID(ctx, draft.TenantID(), draft.ID())
	require.NoError(t, err)
	submitted, err := loaded.SubmitForReview(analyst, now)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, submitted))

	// Approve. The aggregate leaves its version untouched so the upsert
	// guard matches the stored row and bumps it.
	loaded, err = repo.FindByID(ctx, draft.TenantID(), draft.ID())
	require.NoError(t, err)
	approved, err := loaded.Approve(manager, "PROCEED", "strong financials", now)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, approved))

	final, err := repo.FindByID(ctx, draft.TenantID(), draft.ID())
	require.NoError(t, err)
	assert.Equal(t, valueobject.AssessmentStatusApproved, final.Status())
	assert.Equal(t, manager.ID, final.Approver().ID)
	require.NotNil(t, final.ApprovedAt())
	assert.Equal(t, 4, final.Version())
	require.Len(t, final.Metrics(), 1)
	assert.Equal(t, "liquidity", final.Metrics()[0].Name())
	assert.False(t, final.IsStale())
}

func TestAssessmentRepo_VersionConflict(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewAssessmentRepo(pool)
	ctx := context.Background()

	draft := newDraftAssessment(t)
	require.NoError(t, repo.Save(ctx, draft))

	require.NoError(t, repo.Save(ctx, draft))

	// The stored row is now at version 2; saving a copy that still carries
	// version 1 must be rejected.
	err := repo.Save(ctx, draft)
	require.ErrorIs(t, err, port.ErrVersionConflict)
}

func TestAssessmentRepo_FindByID_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewAssessmentRepo(pool)

	_, err := repo.FindByID(context.Background(), "tenant-001", "missing")
	require.ErrorIs(t, err, port.ErrNotFound)
}
