package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// SubmitForReviewUseCase moves a draft into review, refreshing the cached
// scores first so the decision band reflects the current metrics.
type SubmitForReviewUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.ScoringEngine
}

// NewSubmitForReviewUseCase wires dependencies.
func NewSubmitForReviewUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.ScoringEngine,
) *SubmitForReviewUseCase {
	return &SubmitForReviewUseCase{repo: repo, publisher: publisher, engine: engine}
}

// Execute refreshes calculated fields, submits, persists, and publishes.
func (uc *SubmitForReviewUseCase) Execute(
	ctx context.Context,
	req dto.SubmitForReviewRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	// 1. Load the aggregate.
	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	actor := model.Actor{ID: req.ActorID, Name: req.ActorName}

	// 2. Refresh scores so the review sees a current band.
	assessment = assessment.RefreshCalculatedFields(uc.engine, now)

	// 3. Submit: NEEDS_INFO drafts resubmit, fresh drafts submit.
	if assessment.Status().Equal(valueobject.AssessmentStatusNeedsInfo) {
		assessment, err = assessment.ResubmitForReview(actor, now)
	} else {
		assessment, err = assessment.SubmitForReview(actor, now)
	}
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("submit for review: %w", err)
	}

	// 4. Persist.
	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, assessment.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}
