package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// TransitionCaseUseCase moves a case along its workflow with guard checks.
type TransitionCaseUseCase struct {
	repo      port.CaseRepository
	publisher port.EventPublisher
}

// NewTransitionCaseUseCase wires dependencies.
func NewTransitionCaseUseCase(
	repo port.CaseRepository,
	publisher port.EventPublisher,
) *TransitionCaseUseCase {
	return &TransitionCaseUseCase{repo: repo, publisher: publisher}
}

// Execute loads, transitions, persists, and publishes.
func (uc *TransitionCaseUseCase) Execute(
	ctx context.Context,
	req dto.TransitionCaseRequest,
) (dto.CaseResponse, error) {
	now := time.Now().UTC()

	ddCase, err := uc.repo.FindByID(ctx, req.TenantID, req.CaseID)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("find case: %w", err)
	}

	target, err := valueobject.NewCaseStatus(req.TargetStatus)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("resolve target status: %w", err)
	}

	ddCase, err = ddCase.TransitionStatus(
		target, model.Actor{ID: req.ActorID, Name: req.ActorName}, req.Notes, now,
	)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("transition case: %w", err)
	}

	if err := uc.repo.Save(ctx, ddCase); err != nil {
		return dto.CaseResponse{}, fmt.Errorf("save case: %w", err)
	}

	if err := uc.publisher.Publish(ctx, ddCase.DomainEvents()...); err != nil {
		return dto.CaseResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toCaseResponse(ddCase), nil
}
