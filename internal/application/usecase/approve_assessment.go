package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
)

// ApproveAssessmentUseCase records an approval on an in-review assessment.
type ApproveAssessmentUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
}

// NewApproveAssessmentUseCase wires dependencies.
func NewApproveAssessmentUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
) *ApproveAssessmentUseCase {
	return &ApproveAssessmentUseCase{repo: repo, publisher: publisher}
}

// Execute loads, approves, persists, and publishes.
func (uc *ApproveAssessmentUseCase) Execute(
	ctx context.Context,
	req dto.ApproveAssessmentRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	assessment, err = assessment.Approve(
		model.Actor{ID: req.ActorID, Name: req.ActorName}, req.Decision, req.Comments, now,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("approve assessment: %w", err)
	}

	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, assessment.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}
