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

// DecideCaseUseCase records the final decision on a case awaiting one.
type DecideCaseUseCase struct {
	repo      port.CaseRepository
	publisher port.EventPublisher
}

// NewDecideCaseUseCase wires dependencies.
func NewDecideCaseUseCase(
	repo port.CaseRepository,
	publisher port.EventPublisher,
) *DecideCaseUseCase {
	return &DecideCaseUseCase{repo: repo, publisher: publisher}
}

// Execute loads, decides, persists, and publishes.
func (uc *DecideCaseUseCase) Execute(
	ctx context.Context,
	req dto.DecideCaseRequest,
) (dto.CaseResponse, error) {
	now := time.Now().UTC()

	ddCase, err := uc.repo.FindByID(ctx, req.TenantID, req.CaseID)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("find case: %w", err)
	}

	decision, err := valueobject.NewCaseDecision(req.Decision)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("resolve decision: %w", err)
	}

	ddCase, err = ddCase.MakeDecision(
		decision, model.Actor{ID: req.ActorID, Name: req.ActorName},
		req.Conditions, req.Notes, now,
	)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("decide case: %w", err)
	}

	if err := uc.repo.Save(ctx, ddCase); err != nil {
		return dto.CaseResponse{}, fmt.Errorf("save case: %w", err)
	}

	if err := uc.publisher.Publish(ctx, ddCase.DomainEvents()...); err != nil {
		return dto.CaseResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toCaseResponse(ddCase), nil
}
