package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateAssessmentRequest carries the data needed to open a new assessment.
type CreateAssessmentRequest struct {
	TenantID       string `json:"tenant_id"`
	AssessmentType string `json:"assessment_type"`
	PartnerID      string `json:"partner_id,omitempty"`
	SchemeID       string `json:"scheme_id,omitempty"`
	ActorID        string `json:"actor_id"`
	ActorName      string `json:"actor_name"`
}

// AddMetricRequest scores one weighted criterion on an assessment.
type AddMetricRequest struct {
	TenantID      string `json:"tenant_id"`
	AssessmentID  string `json:"assessment_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Score         int    `json:"score"`
	Weight        int    `json:"weight"`
	Justification string `json:"justification,omitempty"`
	ActorID       string `json:"actor_id"`
	ActorName     string `json:"actor_name"`
}

// GetAssessmentRequest identifies an assessment to retrieve.
type GetAssessmentRequest struct {
	TenantID     string `json:"tenant_id"`
	AssessmentID string `json:"assessment_id"`
}

// SubmitForReviewRequest moves a draft assessment into review.
type SubmitForReviewRequest struct {
	TenantID     string `json:"tenant_id"`
	AssessmentID string `json:"assessment_id"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// ApproveAssessmentRequest records an approval decision.
type ApproveAssessmentRequest struct {
	TenantID     string `json:"tenant_id"`
	AssessmentID string `json:"assessment_id"`
	Decision     string `json:"decision"`
	Comments     string `json:"comments,omitempty"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// RejectAssessmentRequest records a rejection with its mandatory reason.
type RejectAssessmentRequest struct {
	TenantID     string `json:"tenant_id"`
	AssessmentID string `json:"assessment_id"`
	Reason       string `json:"reason"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// RequestInfoRequest sends an in-review assessment back for more information.
type RequestInfoRequest struct {
	TenantID     string `json:"tenant_id"`
	AssessmentID string `json:"assessment_id"`
	Note         string `json:"note,omitempty"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// ArchiveAssessmentRequest moves an assessment to its terminal state.
type ArchiveAssessmentRequest struct {
	TenantID     string `json:"tenant_id"`
	AssessmentID string `json:"assessment_id"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// OpenCaseRequest starts a new due diligence case.
type OpenCaseRequest struct {
	TenantID  string `json:"tenant_id"`
	CaseName  string `json:"case_name"`
	Priority  string `json:"priority,omitempty"`
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name"`
}

// TransitionCaseRequest moves a case along its workflow.
type TransitionCaseRequest struct {
	TenantID     string `json:"tenant_id"`
	CaseID       string `json:"case_id"`
	TargetStatus string `json:"target_status"`
	Notes        string `json:"notes,omitempty"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// DecideCaseRequest records the final decision on a case.
type DecideCaseRequest struct {
	TenantID   string   `json:"tenant_id"`
	CaseID     string   `json:"case_id"`
	Decision   string   `json:"decision"`
	Conditions []string `json:"conditions,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	ActorID    string   `json:"actor_id"`
	ActorName  string   `json:"actor_name"`
}

// GetCaseRequest identifies a case to retrieve.
type GetCaseRequest struct {
	TenantID string `json:"tenant_id"`
	CaseID   string `json:"case_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// MetricResponse is the external representation of one scored metric.
type MetricResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Score            int             `json:"score"`
	Weight           int             `json:"weight"`
	WeightedScore    int             `json:"weighted_score"`
	MaxWeightedScore int             `json:"max_weighted_score"`
	ScorePercentage  decimal.Decimal `json:"score_percentage"`
	Justification    string          `json:"justification,omitempty"`
}

// AssessmentResponse is the external representation of an assessment.
type AssessmentResponse struct {
	ID                 string           `json:"id"`
	TenantID           string           `json:"tenant_id"`
	AssessmentType     string           `json:"assessment_type"`
	PartnerID          string           `json:"partner_id,omitempty"`
	SchemeID           string           `json:"scheme_id,omitempty"`
	Status             string           `json:"status"`
	Metrics            []MetricResponse `json:"metrics"`
	TotalWeightedScore int              `json:"total_weighted_score"`
	MaxPossibleScore   int              `json:"max_possible_score"`
	ScorePercentage    decimal.Decimal  `json:"score_percentage"`
	DecisionBand       string           `json:"decision_band"`
	Recommendations    []string         `json:"recommendations"`
	AssessorID         string           `json:"assessor_id"`
	ApproverID         string           `json:"approver_id,omitempty"`
	SubmittedAt        *time.Time       `json:"submitted_at,omitempty"`
	ApprovedAt         *time.Time       `json:"approved_at,omitempty"`
	Version            int              `json:"version"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// RankedCategoryResponse is one entry of a category performance ranking.
type RankedCategoryResponse struct {
	Category      string          `json:"category"`
	DisplayName   string          `json:"display_name"`
	Percentage    decimal.Decimal `json:"percentage"`
	WeightedScore int             `json:"weighted_score"`
	MaxPossible   int             `json:"max_possible"`
}

// AssessmentDetailResponse augments an assessment with its live category
// analysis.
type AssessmentDetailResponse struct {
	AssessmentResponse
	StrongestCategories []RankedCategoryResponse `json:"strongest_categories"`
	WeakestCategories   []RankedCategoryResponse `json:"weakest_categories"`
}

// RecomputeStaleResponse reports the outcome of a batch recompute run.
type RecomputeStaleResponse struct {
	Checked   int `json:"checked"`
	Corrected int `json:"corrected"`
}

// StatusChangeResponse is one entry of a case's transition history.
type StatusChangeResponse struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CaseResponse is the external representation of a due diligence case.
type CaseResponse struct {
	ID                   string                 `json:"id"`
	TenantID             string                 `json:"tenant_id"`
	CaseReference        string                 `json:"case_reference"`
	CaseName             string                 `json:"case_name"`
	Priority             string                 `json:"priority,omitempty"`
	Status               string                 `json:"status"`
	CompletionPercentage int                    `json:"completion_percentage"`
	LeadAssessorID       string                 `json:"lead_assessor_id"`
	Decision             string                 `json:"decision,omitempty"`
	DecisionMakerID      string                 `json:"decision_maker_id,omitempty"`
	DecisionAt           *time.Time             `json:"decision_at,omitempty"`
	Conditions           []string               `json:"conditions,omitempty"`
	History              []StatusChangeResponse `json:"history,omitempty"`
	Version              int                    `json:"version"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}
