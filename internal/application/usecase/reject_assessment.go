package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
)

// RejectAssessmentUseCase records a rejection with its mandatory reason.
type RejectAssessmentUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
}

// NewRejectAssessmentUseCase wires dependencies.
func NewRejectAssessmentUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
) *RejectAssessmentUseCase {
	return &RejectAssessmentUseCase{repo: repo, publisher: publisher}
}

// Execute loads, rejects, persists, and publishes.
func (uc *RejectAssessmentUseCase) Execute(
	ctx context.Context,
	req dto.RejectAssessmentRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	assessment, err = assessment.Reject(
		model.Actor{ID: req.ActorID, Name: req.ActorName}, req.Reason, now,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("reject assessment: %w", err)
	}

	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, assessment.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}
