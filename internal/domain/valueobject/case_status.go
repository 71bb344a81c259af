package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CaseStatus – immutable value object
// ---------------------------------------------------------------------------

// CaseStatus represents the workflow stage of a due diligence case.
type CaseStatus struct {
	value string
}

const (
	caseStatusInitiated       = "INITIATED"
	caseStatusDataCollection  = "DATA_COLLECTION"
	caseStatusAnalysis        = "ANALYSIS"
	caseStatusReview          = "REVIEW"
	caseStatusDecisionPending = "DECISION_PENDING"
	caseStatusApproved        = "APPROVED"
	caseStatusRejected        = "REJECTED"
	caseStatusOnHold          = "ON_HOLD"
	caseStatusCompleted       = "COMPLETED"
	caseStatusArchived        = "ARCHIVED"
)

var (
	CaseStatusInitiated       = CaseStatus{value: caseStatusInitiated}
	CaseStatusDataCollection  = CaseStatus{value: caseStatusDataCollection}
	CaseStatusAnalysis        = CaseStatus{value: caseStatusAnalysis}
	CaseStatusReview          = CaseStatus{value: caseStatusReview}
	CaseStatusDecisionPending = CaseStatus{value: caseStatusDecisionPending}
	CaseStatusApproved        = CaseStatus{value: caseStatusApproved}
	CaseStatusRejected        = CaseStatus{value: caseStatusRejected}
	CaseStatusOnHold          = CaseStatus{value: caseStatusOnHold}
	CaseStatusCompleted       = CaseStatus{value: caseStatusCompleted}
	CaseStatusArchived        = CaseStatus{value: caseStatusArchived}
)

var validCaseStatuses = map[string]CaseStatus{
	caseStatusInitiated:       CaseStatusInitiated,
	caseStatusDataCollection:  CaseStatusDataCollection,
	caseStatusAnalysis:        CaseStatusAnalysis,
	caseStatusReview:          CaseStatusReview,
	caseStatusDecisionPending: CaseStatusDecisionPending,
	caseStatusApproved:        CaseStatusApproved,
	caseStatusRejected:        CaseStatusRejected,
	caseStatusOnHold:          CaseStatusOnHold,
	caseStatusCompleted:       CaseStatusCompleted,
	caseStatusArchived:        CaseStatusArchived,
}

var caseTransitions = map[string][]string{
	caseStatusInitiated:       {caseStatusDataCollection, caseStatusOnHold, caseStatusArchived},
	caseStatusDataCollection:  {caseStatusAnalysis, caseStatusOnHold, caseStatusArchived},
	caseStatusAnalysis:        {caseStatusReview, caseStatusOnHold, caseStatusArchived},
	caseStatusReview:          {caseStatusDecisionPending, caseStatusAnalysis, caseStatusOnHold, caseStatusArchived},
	caseStatusDecisionPending: {caseStatusApproved, caseStatusRejected, caseStatusOnHold, caseStatusArchived},
	caseStatusApproved:        {caseStatusCompleted, caseStatusArchived},
	caseStatusRejected:        {caseStatusCompleted, caseStatusArchived},
	caseStatusOnHold:          {caseStatusDataCollection, caseStatusAnalysis, caseStatusReview, caseStatusArchived},
	caseStatusCompleted:       {caseStatusArchived},
	caseStatusArchived:        {},
}

// caseCompletionWeights maps each stage to its workflow completion
// percentage. ON_HOLD carries no progress of its own.
var caseCompletionWeights = map[string]int{
	caseStatusInitiated:       10,
	caseStatusDataCollection:  25,
	caseStatusAnalysis:        50,
	caseStatusReview:          75,
	caseStatusDecisionPending: 90,
	caseStatusApproved:        100,
	caseStatusRejected:        100,
	caseStatusCompleted:       100,
	caseStatusArchived:        100,
}

// NewCaseStatus creates a CaseStatus from a raw string.
func NewCaseStatus(s string) (CaseStatus, error) {
	v, ok := validCaseStatuses[s]
	if !ok {
		return CaseStatus{}, fmt.Errorf("invalid case status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CaseStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CaseStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CaseStatus) Equal(other CaseStatus) bool { return s.value == other.value }

// CanTransitionTo reports whether the workflow permits moving to target.
func (s CaseStatus) CanTransitionTo(target CaseStatus) bool {
	for _, t := range caseTransitions[s.value] {
		if t == target.value {
			return true
		}
	}
	return false
}

// CompletionPercentage returns how far through the workflow the stage sits.
func (s CaseStatus) CompletionPercentage() int {
	return caseCompletionWeights[s.value]
}

// IsClosed reports whether the case no longer accrues work.
func (s CaseStatus) IsClosed() bool {
	switch s.value {
	case caseStatusCompleted, caseStatusArchived, caseStatusRejected:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// CaseDecision – immutable value object
// ---------------------------------------------------------------------------

// CaseDecision is the final call recorded on a case awaiting decision.
type CaseDecision struct {
	value string
}

const (
	caseDecisionProceed     = "PROCEED"
	caseDecisionConditional = "CONDITIONAL"
	caseDecisionDecline     = "DECLINE"
	caseDecisionDefer       = "DEFER"
)

var (
	CaseDecisionProceed     = CaseDecision{value: caseDecisionProceed}
	CaseDecisionConditional = CaseDecision{value: caseDecisionConditional}
	CaseDecisionDecline     = CaseDecision{value: caseDecisionDecline}
	CaseDecisionDefer       = CaseDecision{value: caseDecisionDefer}
)

var validCaseDecisions = map[string]CaseDecision{
	caseDecisionProceed:     CaseDecisionProceed,
	caseDecisionConditional: CaseDecisionConditional,
	caseDecisionDecline:     CaseDecisionDecline,
	caseDecisionDefer:       CaseDecisionDefer,
}

// NewCaseDecision creates a CaseDecision from a raw string.
func NewCaseDecision(s string) (CaseDecision, error) {
	v, ok := validCaseDecisions[s]
	if !ok {
		return CaseDecision{}, fmt.Errorf("invalid case decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d CaseDecision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d CaseDecision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d CaseDecision) Equal(other CaseDecision) bool { return d.value == other.value }

// ResultingStatus maps a decision to the case status it produces.
func (d CaseDecision) ResultingStatus() CaseStatus {
	switch d.value {
	case caseDecisionProceed, caseDecisionConditional:
		return CaseStatusApproved
	case caseDecisionDecline:
		return CaseStatusRejected
	case caseDecisionDefer:
		return CaseStatusOnHold
	}
	return CaseStatus{}
}
