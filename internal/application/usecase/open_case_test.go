package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/application/usecase"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

func validOpenCaseRequest() dto.OpenCaseRequest {
	return dto.OpenCaseRequest{
		TenantID:  "tenant-001",
		CaseName:  "Northgate scheme review",
		Priority:  "HIGH",
		ActorID:   "analyst-1",
		ActorName: "Alex Morgan",
	}
}

func TestOpenCase_Execute(t *testing.T) {
	t.Run("allocates the reference from the per-year sequence", func(t *testing.T) {
		repo := &mockCaseRepository{
			nextSequenceFunc: func(_ context.Context, year int) (int, error) {
				return 7, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewOpenCaseUseCase(repo, publisher)
		resp, err := uc.Execute(context.Background(), validOpenCaseRequest())

		require.NoError(t, err)
		year := time.Now().UTC().Year()
		assert.Equal(t, model.FormatCaseReference(year, 7), resp.CaseReference)
		assert.Equal(t, "INITIATED", resp.Status)
		assert.Equal(t, 10, resp.CompletionPercentage)

		require.Len(t, repo.saved, 1)
		assert.NotEmpty(t, publisher.published)
	})

	t.Run("fails when the sequence cannot be allocated", func(t *testing.T) {
		repo := &mockCaseRepository{
			nextSequenceFunc: func(_ context.Context, _ int) (int, error) {
				return 0, fmt.Errorf("database unavailable")
			},
		}

		uc := usecase.NewOpenCaseUseCase(repo, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), validOpenCaseRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "allocate case sequence")
	})

	t.Run("fails without a case name", func(t *testing.T) {
		uc := usecase.NewOpenCaseUseCase(&mockCaseRepository{}, &mockEventPublisher{})

		req := validOpenCaseRequest()
		req.CaseName = ""
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create case")
	})
}

func TestDecideCase_Execute(t *testing.T) {
	pendingCase := func(t *testing.T) model.DueDiligenceCase {
		t.Helper()
		now := time.Now().UTC()
		actor := model.Actor{ID: "analyst-1", Name: "Alex Morgan"}
		c, err := model.NewDueDiligenceCase("tenant-001", "DD20260001", "Northgate scheme review", "HIGH", actor, now)
		require.NoError(t, err)
		for _, status := range []valueobject.CaseStatus{
			valueobject.CaseStatusDataCollection,
			valueobject.CaseStatusAnalysis,
			valueobject.CaseStatusReview,
			valueobject.CaseStatusDecisionPending,
		} {
			c, err = c.TransitionStatus(status, actor, "", now)
			require.NoError(t, err)
		}
		return c.ClearEvents()
	}

	decideRequest := func(id, decision string) dto.DecideCaseRequest {
		return dto.DecideCaseRequest{
			TenantID:  "tenant-001",
			CaseID:    id,
			Decision:  decision,
			ActorID:   "manager-1",
			ActorName: "Sam Reed",
		}
	}

	t.Run("proceed approves and records the decision", func(t *testing.T) {
		existing := pendingCase(t)
		repo := &mockCaseRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.DueDiligenceCase, error) {
				return existing, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDecideCaseUseCase(repo, publisher)
		resp, err := uc.Execute(context.Background(), decideRequest(existing.ID(), "PROCEED"))

		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Equal(t, "PROCEED", resp.Decision)
		assert.Equal(t, "manager-1", resp.DecisionMakerID)
		require.NotNil(t, resp.DecisionAt)
		require.Len(t, repo.saved, 1)
		assert.NotEmpty(t, publisher.published)
	})

	t.Run("defer places the case on hold", func(t *testing.T) {
		existing := pendingCase(t)
		repo := &mockCaseRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.DueDiligenceCase, error) {
				return existing, nil
			},
		}

		uc := usecase.NewDecideCaseUseCase(repo, &mockEventPublisher{})
		resp, err := uc.Execute(context.Background(), decideRequest(existing.ID(), "DEFER"))

		require.NoError(t, err)
		assert.Equal(t, "ON_HOLD", resp.Status)
	})

	t.Run("refuses an unknown decision", func(t *testing.T) {
		existing := pendingCase(t)
		repo := &mockCaseRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.DueDiligenceCase, error) {
				return existing, nil
			},
		}

		uc := usecase.NewDecideCaseUseCase(repo, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), decideRequest(existing.ID(), "MAYBE"))
		require.Error(t, err)
	})

	t.Run("refuses a decision before decision pending", func(t *testing.T) {
		now := time.Now().UTC()
		actor := model.Actor{ID: "analyst-1", Name: "Alex Morgan"}
		existing, err := model.NewDueDiligenceCase("tenant-001", "DD20260002", "Early case", "", actor, now)
		require.NoError(t, err)

		repo := &mockCaseRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.DueDiligenceCase, error) {
				return existing, nil
			},
		}

		uc := usecase.NewDecideCaseUseCase(repo, &mockEventPublisher{})
		_, err = uc.Execute(context.Background(), decideRequest(existing.ID(), "PROCEED"))
		assert.ErrorIs(t, err, model.ErrDecisionNotPending)
	})
}
