package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
)

// ArchiveAssessmentUseCase moves an assessment to its terminal ARCHIVED
// state.
type ArchiveAssessmentUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
}

// NewArchiveAssessmentUseCase wires dependencies.
func NewArchiveAssessmentUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
) *ArchiveAssessmentUseCase {
	return &ArchiveAssessmentUseCase{repo: repo, publisher: publisher}
}

// Execute loads, archives, persists, and publishes.
func (uc *ArchiveAssessmentUseCase) Execute(
	ctx context.Context,
	req dto.ArchiveAssessmentRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	assessment, err = assessment.Archive(
		model.Actor{ID: req.ActorID, Name: req.ActorName}, now,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("archive assessment: %w", err)
	}

	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, assessment.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}
