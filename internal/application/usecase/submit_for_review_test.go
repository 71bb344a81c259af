package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/application/usecase"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

func TestSubmitForReview_Execute(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultThresholds())

	submitRequest := func(id string) dto.SubmitForReviewRequest {
		return dto.SubmitForReviewRequest{
			TenantID:     "tenant-001",
			AssessmentID: id,
			ActorID:      "analyst-1",
			ActorName:    "Alex Morgan",
		}
	}

	t.Run("refreshes scores before submitting so the band is current", func(t *testing.T) {
		now := time.Now().UTC()
		existing := draftAssessment(t)
		m, err := model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 4, 5, "",
			model.Actor{ID: "analyst-1", Name: "Alex Morgan"}, now)
		require.NoError(t, err)
		existing, err = existing.AddMetric(m, now)
		require.NoError(t, err)
		// The cache is still zeroed: the use case must refresh it.
		require.True(t, existing.IsStale())

		repo := &mockAssessmentRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Assessment, error) {
				return existing, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewSubmitForReviewUseCase(repo, publisher, engine)
		resp, err := uc.Execute(context.Background(), submitRequest(existing.ID()))

		require.NoError(t, err)
		assert.Equal(t, "IN_REVIEW", resp.Status)
		assert.Equal(t, "ACCEPTABLE", resp.DecisionBand)
		require.NotNil(t, resp.SubmittedAt)

		require.Len(t, repo.saved, 1)
		assert.False(t, repo.saved[0].IsStale())
		assert.NotEmpty(t, publisher.published)
	})

	t.Run("resubmits a needs-info assessment", func(t *testing.T) {
		now := time.Now().UTC()
		existing := draftAssessment(t)
		existing, err := existing.SubmitForReview(model.Actor{ID: "analyst-1", Name: "Alex Morgan"}, now)
		require.NoError(t, err)
		existing, err = existing.RequestInfo(model.Actor{ID: "manager-1", Name: "Sam Reed"}, "need accounts", now)
		require.NoError(t, err)
		existing = existing.ClearEvents()

		repo := &mockAssessmentRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Assessment, error) {
				return existing, nil
			},
		}

		uc := usecase.NewSubmitForReviewUseCase(repo, &mockEventPublisher{}, engine)
		resp, err := uc.Execute(context.Background(), submitRequest(existing.ID()))

		require.NoError(t, err)
		assert.Equal(t, "IN_REVIEW", resp.Status)
	})

	t.Run("refuses submission from a terminal status", func(t *testing.T) {
		now := time.Now().UTC()
		existing := draftAssessment(t)
		existing, err := existing.Archive(model.Actor{ID: "manager-1", Name: "Sam Reed"}, now)
		require.NoError(t, err)

		repo := &mockAssessmentRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Assessment, error) {
				return existing, nil
			},
		}

		uc := usecase.NewSubmitForReviewUseCase(repo, &mockEventPublisher{}, engine)
		_, err = uc.Execute(context.Background(), submitRequest(existing.ID()))
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}
