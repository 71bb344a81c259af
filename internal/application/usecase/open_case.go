package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
)

// OpenCaseUseCase starts a new due diligence case with a generated
// DD<year><seq> reference.
type OpenCaseUseCase struct {
	repo      port.CaseRepository
	publisher port.EventPublisher
}

// NewOpenCaseUseCase wires dependencies.
func NewOpenCaseUseCase(
	repo port.CaseRepository,
	publisher port.EventPublisher,
) *OpenCaseUseCase {
	return &OpenCaseUseCase{repo: repo, publisher: publisher}
}

// Execute allocates the case reference, creates, persists, and publishes.
func (uc *OpenCaseUseCase) Execute(
	ctx context.Context,
	req dto.OpenCaseRequest,
) (dto.CaseResponse, error) {
	now := time.Now().UTC()

	// 1. Allocate the per-year sequence for the reference.
	seq, err := uc.repo.NextSequence(ctx, now.Year())
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("allocate case sequence: %w", err)
	}
	reference := model.FormatCaseReference(now.Year(), seq)

	// 2. Create the aggregate.
	ddCase, err := model.NewDueDiligenceCase(
		req.TenantID, reference, req.CaseName, req.Priority,
		model.Actor{ID: req.ActorID, Name: req.ActorName}, now,
	)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("create case: %w", err)
	}

	// 3. Persist.
	if err := uc.repo.Save(ctx, ddCase); err != nil {
		return dto.CaseResponse{}, fmt.Errorf("save case: %w", err)
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, ddCase.DomainEvents()...); err != nil {
		return dto.CaseResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toCaseResponse(ddCase), nil
}

func toCaseResponse(c model.DueDiligenceCase) dto.CaseResponse {
	history := c.History()
	historyResponses := make([]dto.StatusChangeResponse, 0, len(history))
	for _, h := range history {
		historyResponses = append(historyResponses, dto.StatusChangeResponse{
			FromStatus: h.FromStatus.String(),
			ToStatus:   h.ToStatus.String(),
			ChangedBy:  h.ChangedBy.ID,
			Notes:      h.Notes,
			OccurredAt: h.OccurredAt,
		})
	}
	return dto.CaseResponse{
		ID:                   c.ID(),
		TenantID:             c.TenantID(),
		CaseReference:        c.CaseReference(),
		CaseName:             c.CaseName(),
		Priority:             c.Priority(),
		Status:               c.Status().String(),
		CompletionPercentage: c.CompletionPercentage(),
		LeadAssessorID:       c.LeadAssessor().ID,
		Decision:             c.Decision().String(),
		DecisionMakerID:      c.DecisionMaker().ID,
		DecisionAt:           c.DecisionAt(),
		Conditions:           c.Conditions(),
		History:              historyResponses,
		Version:              c.Version(),
		CreatedAt:            c.CreatedAt(),
		UpdatedAt:            c.UpdatedAt(),
	}
}
