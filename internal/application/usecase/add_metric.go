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

// AddMetricUseCase scores one weighted criterion on an editable assessment
// and refreshes the cached aggregate fields in the same save.
type AddMetricUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.ScoringEngine
}

// NewAddMetricUseCase wires dependencies.
func NewAddMetricUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.ScoringEngine,
) *AddMetricUseCase {
	return &AddMetricUseCase{repo: repo, publisher: publisher, engine: engine}
}

// Execute validates the metric, appends it, recomputes cached scores, and
// persists the assessment.
func (uc *AddMetricUseCase) Execute(
	ctx context.Context,
	req dto.AddMetricRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	// 1. Load the aggregate.
	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	// 2. Resolve the category and validate the metric.
	category, err := valueobject.NewMetricCategory(req.Category)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("resolve category: %w", err)
	}
	metric, err := model.NewMetric(
		req.Name, category, req.Score, req.Weight, req.Justification,
		model.Actor{ID: req.ActorID, Name: req.ActorName}, now,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("create metric: %w", err)
	}

	// 3. Append and recompute the cached fields.
	assessment, err = assessment.AddMetric(metric, now)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("add metric: %w", err)
	}
	assessment = assessment.RefreshCalculatedFields(uc.engine, now)

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
