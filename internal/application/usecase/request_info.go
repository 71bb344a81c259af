package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
)

// RequestInfoUseCase sends an in-review assessment back for additional
// information, reopening metric edits.
type RequestInfoUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
}

// NewRequestInfoUseCase wires dependencies.
func NewRequestInfoUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
) *RequestInfoUseCase {
	return &RequestInfoUseCase{repo: repo, publisher: publisher}
}

// Execute loads, transitions to NEEDS_INFO, persists, and publishes.
func (uc *RequestInfoUseCase) Execute(
	ctx context.Context,
	req dto.RequestInfoRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	assessment, err = assessment.RequestInfo(
		model.Actor{ID: req.ActorID, Name: req.ActorName}, req.Note, now,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("request info: %w", err)
	}

	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, assessment.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}
