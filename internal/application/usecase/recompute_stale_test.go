package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/application/usecase"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// staleAssessment builds an assessment whose cached totals have drifted from
// its metric collection.
func staleAssessment(t *testing.T, engine *service.ScoringEngine) model.Assessment {
	t.Helper()
	now := time.Now().UTC()
	a := draftAssessment(t)
	m, err := model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 4, 5, "",
		model.Actor{ID: "analyst-1", Name: "Alex Morgan"}, now)
	require.NoError(t, err)
	a, err = a.AddMetric(m, now)
	require.NoError(t, err)
	require.True(t, a.IsStale())
	return a.ClearEvents()
}

// freshAssessment builds an assessment whose cache matches its metrics.
func freshAssessment(t *testing.T, engine *service.ScoringEngine) model.Assessment {
	t.Helper()
	a := staleAssessment(t, engine)
	a = a.RefreshCalculatedFields(engine, time.Now().UTC())
	require.False(t, a.IsStale())
	return a.ClearEvents()
}

func TestRecomputeStale_Execute(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultThresholds())
	logger := slog.New(slog.DiscardHandler)

	t.Run("corrects only drifted records", func(t *testing.T) {
		stale := staleAssessment(t, engine)
		fresh := freshAssessment(t, engine)

		repo := &mockAssessmentRepository{
			listAllFunc: func(_ context.Context) ([]model.Assessment, error) {
				return []model.Assessment{fresh, stale}, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewRecomputeStaleUseCase(repo, publisher, engine, logger)
		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Checked)
		assert.Equal(t, 1, resp.Corrected)

		require.Len(t, repo.saved, 1)
		assert.Equal(t, stale.ID(), repo.saved[0].ID())
		assert.False(t, repo.saved[0].IsStale())
		assert.NotEmpty(t, publisher.published)
	})

	t.Run("a failing record is skipped, not fatal", func(t *testing.T) {
		first := staleAssessment(t, engine)
		second := staleAssessment(t, engine)

		repo := &mockAssessmentRepository{
			listAllFunc: func(_ context.Context) ([]model.Assessment, error) {
				return []model.Assessment{first, second}, nil
			},
		}
		repo.saveFunc = func(_ context.Context, a model.Assessment) error {
			if a.ID() == first.ID() {
				return fmt.Errorf("row lock timeout")
			}
			repo.saved = append(repo.saved, a)
			return nil
		}

		uc := usecase.NewRecomputeStaleUseCase(repo, &mockEventPublisher{}, engine, logger)
		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Checked)
		assert.Equal(t, 1, resp.Corrected)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, second.ID(), repo.saved[0].ID())
	})

	t.Run("propagates a listing failure", func(t *testing.T) {
		repo := &mockAssessmentRepository{
			listAllFunc: func(_ context.Context) ([]model.Assessment, error) {
				return nil, fmt.Errorf("database unavailable")
			},
		}

		uc := usecase.NewRecomputeStaleUseCase(repo, &mockEventPublisher{}, engine, logger)
		_, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list assessments")
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		stale := staleAssessment(t, engine)
		store := []model.Assessment{stale}

		repo := &mockAssessmentRepository{}
		repo.listAllFunc = func(_ context.Context) ([]model.Assessment, error) {
			return store, nil
		}
		repo.saveFunc = func(_ context.Context, a model.Assessment) error {
			store = []model.Assessment{a.ClearEvents()}
			return nil
		}

		uc := usecase.NewRecomputeStaleUseCase(repo, &mockEventPublisher{}, engine, logger)

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Corrected)

		resp, err = uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Corrected, "second run has nothing left to fix")
	})
}
