package usecase

import (
	"context"
	"fmt"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
)

// rankingLimit caps the strongest/weakest category lists on the detail view.
const rankingLimit = 3

// GetAssessmentUseCase retrieves an assessment with its category analysis.
type GetAssessmentUseCase struct {
	repo   port.AssessmentRepository
	engine *service.ScoringEngine
}

// NewGetAssessmentUseCase wires dependencies.
func NewGetAssessmentUseCase(
	repo port.AssessmentRepository,
	engine *service.ScoringEngine,
) *GetAssessmentUseCase {
	return &GetAssessmentUseCase{repo: repo, engine: engine}
}

// Execute loads the assessment and computes the live category rankings.
func (uc *GetAssessmentUseCase) Execute(
	ctx context.Context,
	req dto.GetAssessmentRequest,
) (dto.AssessmentDetailResponse, error) {
	assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
	if err != nil {
		return dto.AssessmentDetailResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	result := uc.engine.CalculateScores(assessment.Metrics())
	return dto.AssessmentDetailResponse{
		AssessmentResponse:  toAssessmentResponse(assessment),
		StrongestCategories: toRankedCategories(uc.engine.StrongestCategories(result, rankingLimit)),
		WeakestCategories:   toRankedCategories(uc.engine.WeakestCategories(result, rankingLimit)),
	}, nil
}

func toRankedCategories(ranked []service.RankedCategory) []dto.RankedCategoryResponse {
	out := make([]dto.RankedCategoryResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.RankedCategoryResponse{
			Category:      r.Category.String(),
			DisplayName:   r.Category.DisplayName(),
			Percentage:    r.Percentage,
			WeightedScore: r.WeightedScore,
			MaxPossible:   r.MaxPossible,
		})
	}
	return out
}
