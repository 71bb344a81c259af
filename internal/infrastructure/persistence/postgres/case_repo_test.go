//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
	pgrepo "github.com/enterpriseland/assessment-service/internal/infrastructure/persistence/postgres"
)

func newOpenCase(t *testing.T) model.DueDiligenceCase {
	t.Helper()
	c, err := model.NewDueDiligenceCase(
		"tenant-001", "DD20260001", "Northgate scheme review", "HIGH",
		analyst, time.Now().UTC(),
	)
	require.NoError(t, err)
	return c.ClearEvents()
}

func TestCaseRepo_SaveFreshCase(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewCaseRepo(pool)
	ctx := context.Background()

	// A freshly opened case has no conditions and no decision; the first
	// insert must still satisfy the TEXT[] NOT NULL column.
	opened := newOpenCase(t)
	require.NoError(t, repo.Save(ctx, opened))

	loaded, err := repo.FindByID(ctx, opened.TenantID(), opened.ID())
	require.NoError(t, err)

	assert.Equal(t, opened.CaseReference(), loaded.CaseReference())
	assert.Equal(t, valueobject.CaseStatusInitiated, loaded.Status())
	assert.Empty(t, loaded.Conditions())
	assert.Equal(t, 1, loaded.Version())

	byRef, err := repo.FindByReference(ctx, opened.TenantID(), opened.CaseReference())
	require.NoError(t, err)
	assert.Equal(t, opened.ID(), byRef.ID())
}

func TestCaseRepo_NextSequence(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewCaseRepo(pool)
	ctx := context.Background()

	seq, err := repo.NextSequence(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	seq, err = repo.NextSequence(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, seq)

	// Each year counts independently.
	seq, err = repo.NextSequence(ctx, 2027)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)
}

func TestCaseRepo_FindByID_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgrepo.NewCaseRepo(pool)

	_, err := repo.FindByID(context.Background(), "tenant-001", "missing")
	require.ErrorIs(t, err, port.ErrNotFound)
}
