package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enterpriseland/assessment-service/internal/domain/event"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// DueDiligenceCase aggregate root (casework superset of the assessment flow)
// ---------------------------------------------------------------------------

var ErrDecisionNotPending = errors.New("case must be awaiting decision")

// caseReferencePrefix starts every generated case reference, e.g. DD20260001.
const caseReferencePrefix = "DD"

// FormatCaseReference builds the canonical case reference from the year and
// the per-year sequence number.
func FormatCaseReference(year, sequence int) string {
	return fmt.Sprintf("%s%d%04d", caseReferencePrefix, year, sequence)
}

// StatusChange is one entry in a case's transition history.
type StatusChange struct {
	FromStatus valueobject.CaseStatus
	ToStatus   valueobject.CaseStatus
	ChangedBy  Actor
	Notes      string
	OccurredAt time.Time
}

// DueDiligenceCase tracks one end-to-end due diligence engagement. Like
// Assessment it is an immutable aggregate: every mutation returns a copy.
type DueDiligenceCase struct {
	id            string
	tenantID      string
	caseReference string
	caseName      string
	priority      string
	status        valueobject.CaseStatus
	leadAssessor  Actor

	decision      valueobject.CaseDecision
	decisionMaker Actor
	decisionAt    *time.Time
	conditions    []string

	history     []StatusChange
	completedAt *time.Time

	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewDueDiligenceCase opens a case in INITIATED status. The reference must
// already be generated (the repository owns the per-year sequence).
func NewDueDiligenceCase(
	tenantID, caseReference, caseName, priority string,
	leadAssessor Actor,
	now time.Time,
) (DueDiligenceCase, error) {
	if tenantID == "" {
		return DueDiligenceCase{}, errors.New("tenant ID is required")
	}
	if caseReference == "" {
		return DueDiligenceCase{}, errors.New("case reference is required")
	}
	if caseName == "" {
		return DueDiligenceCase{}, errors.New("case name is required")
	}
	if leadAssessor.IsZero() {
		return DueDiligenceCase{}, errors.New("lead assessor is required")
	}

	id := uuid.New().String()
	c := DueDiligenceCase{
		id:            id,
		tenantID:      tenantID,
		caseReference: caseReference,
		caseName:      caseName,
		priority:      priority,
		status:        valueobject.CaseStatusInitiated,
		leadAssessor:  leadAssessor,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
	c.domainEvents = append(c.domainEvents, event.NewCaseOpened(
		id, tenantID, caseReference, caseName, leadAssessor.ID,
	))
	return c, nil
}

// ReconstructDueDiligenceCase rebuilds a case from persistence without
// side-effects.
func ReconstructDueDiligenceCase(
	id, tenantID, caseReference, caseName, priority string,
	status valueobject.CaseStatus,
	leadAssessor Actor,
	decision valueobject.CaseDecision,
	decisionMaker Actor,
	decisionAt *time.Time,
	conditions []string,
	history []StatusChange,
	completedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) DueDiligenceCase {
	return DueDiligenceCase{
		id:            id,
		tenantID:      tenantID,
		caseReference: caseReference,
		caseName:      caseName,
		priority:      priority,
		status:        status,
		leadAssessor:  leadAssessor,
		decision:      decision,
		decisionMaker: decisionMaker,
		decisionAt:    decisionAt,
		conditions:    copyStrings(conditions),
		history:       copyHistory(history),
		completedAt:   completedAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// TransitionStatus moves the case along the workflow, recording the change in
// the history trail.
func (c DueDiligenceCase) TransitionStatus(
	target valueobject.CaseStatus,
	actor Actor,
	notes string,
	now time.Time,
) (DueDiligenceCase, error) {
	if actor.IsZero() {
		return c, ErrMissingDecisionMaker
	}
	if !c.status.CanTransitionTo(target) {
		return c, fmt.Errorf("%w: %s -> %s", valueobject.ErrInvalidStatusTransition, c.status, target)
	}

	next := c
	next.status = target
	next.history = append(copyHistory(c.history), StatusChange{
		FromStatus: c.status,
		ToStatus:   target,
		ChangedBy:  actor,
		Notes:      notes,
		OccurredAt: now,
	})
	if target.Equal(valueobject.CaseStatusCompleted) {
		next.completedAt = &now
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCaseStatusChanged(
		c.id, c.tenantID, c.status.String(), target.String(), actor.ID, notes,
	))
	return next, nil
}

// MakeDecision records the final call on a case awaiting decision and moves
// it to the status the decision implies (approve, reject or hold).
func (c DueDiligenceCase) MakeDecision(
	decision valueobject.CaseDecision,
	actor Actor,
	conditions []string,
	notes string,
	now time.Time,
) (DueDiligenceCase, error) {
	if actor.IsZero() {
		return c, ErrMissingDecisionMaker
	}
	if decision.IsZero() {
		return c, errors.New("decision is required")
	}
	if !c.status.Equal(valueobject.CaseStatusDecisionPending) {
		return c, fmt.Errorf("%w: status %s", ErrDecisionNotPending, c.status)
	}

	next := c
	next.decision = decision
	next.decisionMaker = actor
	next.decisionAt = &now
	next.conditions = copyStrings(conditions)
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCaseDecisionMade(
		c.id, c.tenantID, decision.String(), actor.ID, conditions,
	))

	return next.TransitionStatus(decision.ResultingStatus(), actor, notes, now)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c DueDiligenceCase) ID() string                           { return c.id }
func (c DueDiligenceCase) TenantID() string                     { return c.tenantID }
func (c DueDiligenceCase) CaseReference() string                { return c.caseReference }
func (c DueDiligenceCase) CaseName() string                     { return c.caseName }
func (c DueDiligenceCase) Priority() string                     { return c.priority }
func (c DueDiligenceCase) Status() valueobject.CaseStatus       { return c.status }
func (c DueDiligenceCase) LeadAssessor() Actor                  { return c.leadAssessor }
func (c DueDiligenceCase) Decision() valueobject.CaseDecision   { return c.decision }
func (c DueDiligenceCase) DecisionMaker() Actor                 { return c.decisionMaker }
func (c DueDiligenceCase) DecisionAt() *time.Time               { return c.decisionAt }
func (c DueDiligenceCase) Conditions() []string                 { return copyStrings(c.conditions) }
func (c DueDiligenceCase) History() []StatusChange              { return copyHistory(c.history) }
func (c DueDiligenceCase) CompletedAt() *time.Time              { return c.completedAt }
func (c DueDiligenceCase) Version() int                         { return c.version }
func (c DueDiligenceCase) CreatedAt() time.Time                 { return c.createdAt }
func (c DueDiligenceCase) UpdatedAt() time.Time                 { return c.updatedAt }
func (c DueDiligenceCase) DomainEvents() []event.DomainEvent    { return c.domainEvents }

// CompletionPercentage reports workflow progress by stage weight.
func (c DueDiligenceCase) CompletionPercentage() int {
	return c.status.CompletionPercentage()
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (c DueDiligenceCase) ClearEvents() DueDiligenceCase {
	next := c
	next.domainEvents = nil
	return next
}

func copyHistory(src []StatusChange) []StatusChange {
	if len(src) == 0 {
		return nil
	}
	dst := make([]StatusChange, len(src))
	copy(dst, src)
	return dst
}
