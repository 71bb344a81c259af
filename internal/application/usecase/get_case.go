package usecase

import (
	"context"
	"fmt"

	"github.com/enterpriseland/assessment-service/internal/application/dto"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
)

// GetCaseUseCase retrieves a due diligence case by ID.
type GetCaseUseCase struct {
	repo port.CaseRepository
}

// NewGetCaseUseCase wires dependencies.
func NewGetCaseUseCase(repo port.CaseRepository) *GetCaseUseCase {
	return &GetCaseUseCase{repo: repo}
}

// Execute loads and maps the case.
func (uc *GetCaseUseCase) Execute(
	ctx context.Context,
	req dto.GetCaseRequest,
) (dto.CaseResponse, error) {
	ddCase, err := uc.repo.FindByID(ctx, req.TenantID, req.CaseID)
	if err != nil {
		return dto.CaseResponse{}, fmt.Errorf("find case: %w", err)
	}
	return toCaseResponse(ddCase), nil
}
