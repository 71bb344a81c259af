package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/enterpriseland/assessment-service/internal/application/usecase"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// AssessmentHandler exposes assessment and case operations over gRPC.
type AssessmentHandler struct {
	UnimplementedAssessmentServiceServer

	createAssessment *usecase.CreateAssessmentUseCase
	addMetric        *usecase.AddMetricUseCase
	getAssessment    *usecase.GetAssessmentUseCase
	submitForReview  *usecase.SubmitForReviewUseCase
	approve          *usecase.ApproveAssessmentUseCase
	reject           *usecase.RejectAssessmentUseCase
	requestInfo      *usecase.RequestInfoUseCase
	archive          *usecase.ArchiveAssessmentUseCase
	recomputeStale   *usecase.RecomputeStaleUseCase
	openCase         *usecase.OpenCaseUseCase
	transitionCase   *usecase.TransitionCaseUseCase
	decideCase       *usecase.DecideCaseUseCase
	getCase          *usecase.GetCaseUseCase
}

// NewAssessmentHandler creates a new handler with all use-case dependencies.
func NewAssessmentHandler(
	createAssessment *usecase.CreateAssessmentUseCase,
	addMetric *usecase.AddMetricUseCase,
	getAssessment *usecase.GetAssessmentUseCase,
	submitForReview *usecase.SubmitForReviewUseCase,
	approve *usecase.ApproveAssessmentUseCase,
	reject *usecase.RejectAssessmentUseCase,
	requestInfo *usecase.RequestInfoUseCase,
	archive *usecase.ArchiveAssessmentUseCase,
	recomputeStale *usecase.RecomputeStaleUseCase,
	openCase *usecase.OpenCaseUseCase,
	transitionCase *usecase.TransitionCaseUseCase,
	decideCase *usecase.DecideCaseUseCase,
	getCase *usecase.GetCaseUseCase,
) *AssessmentHandler {
	return &AssessmentHandler{
		createAssessment: createAssessment,
		addMetric:        addMetric,
		getAssessment:    getAssessment,
		submitForReview:  submitForReview,
		approve:          approve,
		reject:           reject,
		requestInfo:      requestInfo,
		archive:          archive,
		recomputeStale:   recomputeStale,
		openCase:         openCase,
		transitionCase:   transitionCase,
		decideCase:       decideCase,
		getCase:          getCase,
	}
}

// CreateAssessment opens a new draft assessment.
func (h *AssessmentHandler) CreateAssessment(ctx context.Context, in *CreateAssessmentRequest) (*AssessmentResponse, error) {
	resp, err := h.createAssessment.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// AddMetric scores one criterion on an assessment.
func (h *AssessmentHandler) AddMetric(ctx context.Context, in *AddMetricRequest) (*AssessmentResponse, error) {
	resp, err := h.addMetric.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// GetAssessment retrieves an assessment with its category analysis.
func (h *AssessmentHandler) GetAssessment(ctx context.Context, in *GetAssessmentRequest) (*AssessmentDetailResponse, error) {
	resp, err := h.getAssessment.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// SubmitForReview moves a draft into review.
func (h *AssessmentHandler) SubmitForReview(ctx context.Context, in *SubmitForReviewRequest) (*AssessmentResponse, error) {
	resp, err := h.submitForReview.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// ApproveAssessment records an approval decision.
func (h *AssessmentHandler) ApproveAssessment(ctx context.Context, in *ApproveAssessmentRequest) (*AssessmentResponse, error) {
	resp, err := h.approve.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// RejectAssessment records a rejection.
func (h *AssessmentHandler) RejectAssessment(ctx context.Context, in *RejectAssessmentRequest) (*AssessmentResponse, error) {
	resp, err := h.reject.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// RequestInfo sends an assessment back for additional information.
func (h *AssessmentHandler) RequestInfo(ctx context.Context, in *RequestInfoRequest) (*AssessmentResponse, error) {
	resp, err := h.requestInfo.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// ArchiveAssessment moves an assessment to its terminal state.
func (h *AssessmentHandler) ArchiveAssessment(ctx context.Context, in *ArchiveAssessmentRequest) (*AssessmentResponse, error) {
	resp, err := h.archive.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// RecomputeStale runs the batch drift correction and reports counts.
func (h *AssessmentHandler) RecomputeStale(ctx context.Context, _ *RecomputeStaleRequest) (*RecomputeStaleResponse, error) {
	resp, err := h.recomputeStale.Execute(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// OpenCase starts a new due diligence case.
func (h *AssessmentHandler) OpenCase(ctx context.Context, in *OpenCaseRequest) (*CaseResponse, error) {
	resp, err := h.openCase.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// TransitionCase moves a case along its workflow.
func (h *AssessmentHandler) TransitionCase(ctx context.Context, in *TransitionCaseRequest) (*CaseResponse, error) {
	resp, err := h.transitionCase.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// DecideCase records the final decision on a case.
func (h *AssessmentHandler) DecideCase(ctx context.Context, in *DecideCaseRequest) (*CaseResponse, error) {
	resp, err := h.decideCase.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// GetCase retrieves a case by ID.
func (h *AssessmentHandler) GetCase(ctx context.Context, in *GetCaseRequest) (*CaseResponse, error) {
	resp, err := h.getCase.Execute(ctx, *in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// mapError translates domain failures into gRPC status codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrScoreOutOfRange),
		errors.Is(err, model.ErrWeightOutOfRange),
		errors.Is(err, model.ErrDuplicateMetricName),
		errors.Is(err, model.ErrMissingRequiredReason):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition),
		errors.Is(err, model.ErrAssessmentLocked),
		errors.Is(err, model.ErrDecisionNotPending),
		errors.Is(err, model.ErrMissingDecisionMaker):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, port.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ AssessmentServiceServer = (*AssessmentHandler)(nil)
