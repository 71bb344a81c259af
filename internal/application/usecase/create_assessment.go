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

// CreateAssessmentUseCase opens a new draft assessment for a partner or
// scheme.
type CreateAssessmentUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
}

// NewCreateAssessmentUseCase wires dependencies.
func NewCreateAssessmentUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
) *CreateAssessmentUseCase {
	return &CreateAssessmentUseCase{repo: repo, publisher: publisher}
}

// Execute validates, creates, and persists a new assessment draft.
func (uc *CreateAssessmentUseCase) Execute(
	ctx context.Context,
	req dto.CreateAssessmentRequest,
) (dto.AssessmentResponse, error) {
	now := time.Now().UTC()

	// 1. Resolve the assessment type.
	assessmentType, err := valueobject.NewAssessmentType(req.AssessmentType)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("resolve assessment type: %w", err)
	}

	// 2. Create the aggregate.
	assessment, err := model.NewAssessment(
		req.TenantID, assessmentType, req.PartnerID, req.SchemeID,
		model.Actor{ID: req.ActorID, Name: req.ActorName}, now,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("create assessment: %w", err)
	}

	// 3. Persist.
	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, assessment.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}

func toAssessmentResponse(a model.Assessment) dto.AssessmentResponse {
	metrics := a.Metrics()
	metricResponses := make([]dto.MetricResponse, 0, len(metrics))
	for _, m := range metrics {
		metricResponses = append(metricResponses, dto.MetricResponse{
			ID:               m.ID(),
			Name:             m.Name(),
			Category:         m.Category().String(),
			Score:            m.Score(),
			Weight:           m.Weight(),
			WeightedScore:    m.WeightedScore(),
			MaxWeightedScore: m.MaxWeightedScore(),
			ScorePercentage:  m.ScorePercentage(),
			Justification:    m.Justification(),
		})
	}
	return dto.AssessmentResponse{
		ID:                 a.ID(),
		TenantID:           a.TenantID(),
		AssessmentType:     a.AssessmentType().String(),
		PartnerID:          a.PartnerID(),
		SchemeID:           a.SchemeID(),
		Status:             a.Status().String(),
		Metrics:            metricResponses,
		TotalWeightedScore: a.TotalWeightedScore(),
		MaxPossibleScore:   a.MaxPossibleScore(),
		ScorePercentage:    a.ScorePercentage(),
		DecisionBand:       a.DecisionBand().String(),
		Recommendations:    a.Recommendations(),
		AssessorID:         a.Assessor().ID,
		ApproverID:         a.Approver().ID,
		SubmittedAt:        a.SubmittedAt(),
		ApprovedAt:         a.ApprovedAt(),
		Version:            a.Version(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}
