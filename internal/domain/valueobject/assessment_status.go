package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// AssessmentStatus – immutable value object
// ---------------------------------------------------------------------------

// AssessmentStatus represents the lifecycle stage of an assessment.
type AssessmentStatus struct {
	value string
}

const (
	assessmentStatusDraft     = "DRAFT"
	assessmentStatusInReview  = "IN_REVIEW"
	assessmentStatusApproved  = "APPROVED"
	assessmentStatusRejected  = "REJECTED"
	assessmentStatusNeedsInfo = "NEEDS_INFO"
	assessmentStatusArchived  = "ARCHIVED"
)

var (
	AssessmentStatusDraft     = AssessmentStatus{value: assessmentStatusDraft}
	AssessmentStatusInReview  = AssessmentStatus{value: assessmentStatusInReview}
	AssessmentStatusApproved  = AssessmentStatus{value: assessmentStatusApproved}
	AssessmentStatusRejected  = AssessmentStatus{value: assessmentStatusRejected}
	AssessmentStatusNeedsInfo = AssessmentStatus{value: assessmentStatusNeedsInfo}
	AssessmentStatusArchived  = AssessmentStatus{value: assessmentStatusArchived}
)

var validAssessmentStatuses = map[string]AssessmentStatus{
	assessmentStatusDraft:     AssessmentStatusDraft,
	assessmentStatusInReview:  AssessmentStatusInReview,
	assessmentStatusApproved:  AssessmentStatusApproved,
	assessmentStatusRejected:  AssessmentStatusRejected,
	assessmentStatusNeedsInfo: AssessmentStatusNeedsInfo,
	assessmentStatusArchived:  AssessmentStatusArchived,
}

// assessmentTransitions encodes the legal status graph. An absent key or an
// absent target means the transition is forbidden.
var assessmentTransitions = map[string][]string{
	assessmentStatusDraft:     {assessmentStatusInReview, assessmentStatusArchived},
	assessmentStatusInReview:  {assessmentStatusApproved, assessmentStatusRejected, assessmentStatusNeedsInfo, assessmentStatusDraft},
	assessmentStatusNeedsInfo: {assessmentStatusInReview, assessmentStatusDraft},
	assessmentStatusApproved:  {assessmentStatusArchived},
	assessmentStatusRejected:  {assessmentStatusArchived},
	assessmentStatusArchived:  {},
}

// NewAssessmentStatus creates an AssessmentStatus from a raw string.
func NewAssessmentStatus(s string) (AssessmentStatus, error) {
	v, ok := validAssessmentStatuses[s]
	if !ok {
		return AssessmentStatus{}, fmt.Errorf("invalid assessment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s AssessmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s AssessmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s AssessmentStatus) Equal(other AssessmentStatus) bool { return s.value == other.value }

// CanTransitionTo reports whether the status graph permits moving to target.
func (s AssessmentStatus) CanTransitionTo(target AssessmentStatus) bool {
	for _, t := range assessmentTransitions[s.value] {
		if t == target.value {
			return true
		}
	}
	return false
}

// IsActive reports whether the assessment is still being worked on.
func (s AssessmentStatus) IsActive() bool {
	switch s.value {
	case assessmentStatusDraft, assessmentStatusInReview, assessmentStatusNeedsInfo:
		return true
	}
	return false
}

// IsFinal reports whether the status represents a concluded decision.
func (s AssessmentStatus) IsFinal() bool {
	switch s.value {
	case assessmentStatusApproved, assessmentStatusRejected, assessmentStatusArchived:
		return true
	}
	return false
}

// IsEditable reports whether metrics may still be added or changed.
func (s AssessmentStatus) IsEditable() bool {
	return s.value == assessmentStatusDraft || s.value == assessmentStatusNeedsInfo
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
