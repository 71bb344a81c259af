package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
)

// RecomputeStaleUseCase is the batch job entry point: it walks every stored
// assessment and corrects any whose cached totals have drifted from the live
// metric sum. Recomputation is idempotent, so running concurrently with
// user-driven refreshes only means some records are corrected twice.
type RecomputeStaleUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.ScoringEngine
	logger    *slog.Logger
}

// NewRecomputeStaleUseCase wires dependencies.
func NewRecomputeStaleUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.ScoringEngine,
	logger *slog.Logger,
) *RecomputeStaleUseCase {
	return &RecomputeStaleUseCase{repo: repo, publisher: publisher, engine: engine, logger: logger}
}

// Execute recomputes every stale assessment and reports how many were
// corrected. A failure on one record is logged and skipped so a single bad
// row cannot stall the batch.
func (uc *RecomputeStaleUseCase) Execute(ctx context.Context) (dto.RecomputeStaleResponse, error) {
	now := time.Now().UTC()

	assessments, err := uc.repo.ListAll(ctx)
	if err != nil {
		return dto.RecomputeStaleResponse{}, fmt.Errorf("list assessments: %w", err)
	}

	resp := dto.RecomputeStaleResponse{Checked: len(assessments)}
	for _, assessment := range assessments {
		if !assessment.IsStale() {
			continue
		}

		refreshed := assessment.RefreshCalculatedFields(uc.engine, now)
		if err := uc.repo.Save(ctx, refreshed); err != nil {
			uc.logger.Warn("stale recompute skipped record",
				"assessment_id", assessment.ID(),
				"tenant_id", assessment.TenantID(),
				"error", err)
			continue
		}
		if err := uc.publisher.Publish(ctx, refreshed.DomainEvents()...); err != nil {
			uc.logger.Warn("stale recompute publish failed",
				"assessment_id", assessment.ID(),
				"error", err)
		}
		resp.Corrected++
	}

	uc.logger.Info("stale recompute finished",
		"checked", resp.Checked,
		"corrected", resp.Corrected)
	return resp, nil
}
