package event

import (
	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Assessment Events
// ---------------------------------------------------------------------------

// AssessmentCreated is raised when a new assessment draft is opened.
type AssessmentCreated struct {
	events.BaseEvent
	AssessmentType string `json:"assessment_type"`
	PartnerID      string `json:"partner_id,omitempty"`
	SchemeID       string `json:"scheme_id,omitempty"`
	AssessorID     string `json:"assessor_id"`
}

func NewAssessmentCreated(assessmentID, tenantID, assessmentType, partnerID, schemeID, assessorID string) AssessmentCreated {
	return AssessmentCreated{
		BaseEvent:      events.NewBaseEvent("assessment.created", assessmentID, "Assessment", tenantID),
		AssessmentType: assessmentType,
		PartnerID:      partnerID,
		SchemeID:       schemeID,
		AssessorID:     assessorID,
	}
}

// MetricScored is raised when a metric is added to an assessment.
type MetricScored struct {
	events.BaseEvent
	MetricID   string `json:"metric_id"`
	MetricName string `json:"metric_name"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	Weight     int    `json:"weight"`
	ScoredBy   string `json:"scored_by"`
}

func NewMetricScored(assessmentID, tenantID, metricID, metricName, category string, score, weight int, scoredBy string) MetricScored {
	return MetricScored{
		BaseEvent:  events.NewBaseEvent("assessment.metric_scored", assessmentID, "Assessment", tenantID),
		MetricID:   metricID,
		MetricName: metricName,
		Category:   category,
		Score:      score,
		Weight:     weight,
		ScoredBy:   scoredBy,
	}
}

// AssessmentScoresRefreshed is raised when the cached aggregate fields are
// recomputed from the live metric collection.
type AssessmentScoresRefreshed struct {
	events.BaseEvent
	TotalWeightedScore int             `json:"total_weighted_score"`
	MaxPossibleScore   int             `json:"max_possible_score"`
	ScorePercentage    decimal.Decimal `json:"score_percentage"`
	DecisionBand       string          `json:"decision_band"`
}

func NewAssessmentScoresRefreshed(assessmentID, tenantID string, total, max int, pct decimal.Decimal, band string) AssessmentScoresRefreshed {
	return AssessmentScoresRefreshed{
		BaseEvent:          events.NewBaseEvent("assessment.scores_refreshed", assessmentID, "Assessment", tenantID),
		TotalWeightedScore: total,
		MaxPossibleScore:   max,
		ScorePercentage:    pct,
		DecisionBand:       band,
	}
}

// AssessmentSubmitted is raised when a draft enters review.
type AssessmentSubmitted struct {
	events.BaseEvent
	SubmittedBy  string `json:"submitted_by"`
	DecisionBand string `json:"decision_band"`
}

func NewAssessmentSubmitted(assessmentID, tenantID, submittedBy, decisionBand string) AssessmentSubmitted {
	return AssessmentSubmitted{
		BaseEvent:    events.NewBaseEvent("assessment.submitted", assessmentID, "Assessment", tenantID),
		SubmittedBy:  submittedBy,
		DecisionBand: decisionBand,
	}
}

// AssessmentApproved is raised when a reviewer approves an assessment.
type AssessmentApproved struct {
	events.BaseEvent
	ApproverID string `json:"approver_id"`
	Decision   string `json:"decision"`
	Comments   string `json:"comments,omitempty"`
}

func NewAssessmentApproved(assessmentID, tenantID, approverID, decision, comments string) AssessmentApproved {
	return AssessmentApproved{
		BaseEvent:  events.NewBaseEvent("assessment.approved", assessmentID, "Assessment", tenantID),
		ApproverID: approverID,
		Decision:   decision,
		Comments:   comments,
	}
}

// AssessmentRejected is raised when a reviewer rejects an assessment.
type AssessmentRejected struct {
	events.BaseEvent
	RejectedBy string `json:"rejected_by"`
	Reason     string `json:"reason"`
}

func NewAssessmentRejected(assessmentID, tenantID, rejectedBy, reason string) AssessmentRejected {
	return AssessmentRejected{
		BaseEvent:  events.NewBaseEvent("assessment.rejected", assessmentID, "Assessment", tenantID),
		RejectedBy: rejectedBy,
		Reason:     reason,
	}
}

// AssessmentInfoRequested is raised when review stalls on missing information.
type AssessmentInfoRequested struct {
	events.BaseEvent
	RequestedBy string `json:"requested_by"`
	Note        string `json:"note,omitempty"`
}

func NewAssessmentInfoRequested(assessmentID, tenantID, requestedBy, note string) AssessmentInfoRequested {
	return AssessmentInfoRequested{
		BaseEvent:   events.NewBaseEvent("assessment.info_requested", assessmentID, "Assessment", tenantID),
		RequestedBy: requestedBy,
		Note:        note,
	}
}

// AssessmentArchived is raised when an assessment reaches its terminal state.
type AssessmentArchived struct {
	events.BaseEvent
	ArchivedBy string `json:"archived_by"`
}

func NewAssessmentArchived(assessmentID, tenantID, archivedBy string) AssessmentArchived {
	return AssessmentArchived{
		BaseEvent:  events.NewBaseEvent("assessment.archived", assessmentID, "Assessment", tenantID),
		ArchivedBy: archivedBy,
	}
}

// ---------------------------------------------------------------------------
// Due Diligence Case Events
// ---------------------------------------------------------------------------

// CaseOpened is raised when a new due diligence case is initiated.
type CaseOpened struct {
	events.BaseEvent
	CaseReference string `json:"case_reference"`
	CaseName      string `json:"case_name"`
	LeadAssessor  string `json:"lead_assessor"`
}

func NewCaseOpened(caseID, tenantID, caseReference, caseName, leadAssessor string) CaseOpened {
	return CaseOpened{
		BaseEvent:     events.NewBaseEvent("case.opened", caseID, "DueDiligenceCase", tenantID),
		CaseReference: caseReference,
		CaseName:      caseName,
		LeadAssessor:  leadAssessor,
	}
}

// CaseStatusChanged is raised on every case workflow transition.
type CaseStatusChanged struct {
	events.BaseEvent
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  string `json:"changed_by"`
	Notes      string `json:"notes,omitempty"`
}

func NewCaseStatusChanged(caseID, tenantID, fromStatus, toStatus, changedBy, notes string) CaseStatusChanged {
	return CaseStatusChanged{
		BaseEvent:  events.NewBaseEvent("case.status_changed", caseID, "DueDiligenceCase", tenantID),
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ChangedBy:  changedBy,
		Notes:      notes,
	}
}

// CaseDecisionMade is raised when a final decision is recorded on a case.
type CaseDecisionMade struct {
	events.BaseEvent
	Decision   string   `json:"decision"`
	DecidedBy  string   `json:"decided_by"`
	Conditions []string `json:"conditions,omitempty"`
}

func NewCaseDecisionMade(caseID, tenantID, decision, decidedBy string, conditions []string) CaseDecisionMade {
	return CaseDecisionMade{
		BaseEvent:  events.NewBaseEvent("case.decision_made", caseID, "DueDiligenceCase", tenantID),
		Decision:   decision,
		DecidedBy:  decidedBy,
		Conditions: conditions,
	}
}
