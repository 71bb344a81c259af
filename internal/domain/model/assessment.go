package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/internal/domain/event"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Assessment aggregate root (Gold-Standard scoring framework)
// ---------------------------------------------------------------------------

var (
	ErrDuplicateMetricName   = errors.New("metric name already exists on this assessment")
	ErrAssessmentLocked      = errors.New("assessment is not editable in its current status")
	ErrMissingDecisionMaker  = errors.New("decision requires an acting user")
	ErrMissingRequiredReason = errors.New("rejection requires a reason")
)

// rejectionMarker prefixes the reason entry prepended to recommendations.
const rejectionMarker = "REJECTION REASON: "

// ScoreSnapshot is the full set of cached aggregate fields computed from the
// metric collection at one instant.
type ScoreSnapshot struct {
	TotalWeightedScore int
	MaxPossibleScore   int
	ScorePercentage    decimal.Decimal
	DecisionBand       valueobject.DecisionBand
	Recommendations    []string
}

// Scorer computes a ScoreSnapshot from a metric collection. The scoring
// engine implements it; the aggregate depends only on this interface.
type Scorer interface {
	Snapshot(metrics []Metric) ScoreSnapshot
}

// Assessment is an immutable aggregate. Every mutation returns a new copy.
// The score fields are a cache over the metric collection, replaced only
// through RefreshCalculatedFields.
type Assessment struct {
	id             string
	tenantID       string
	assessmentType valueobject.AssessmentType
	partnerID      string
	schemeID       string
	status         valueobject.AssessmentStatus
	metrics        []Metric

	totalWeightedScore int
	maxPossibleScore   int
	scorePercentage    decimal.Decimal
	decisionBand       valueobject.DecisionBand
	recommendations    []string

	assessor    Actor
	approver    Actor
	submittedAt *time.Time
	approvedAt  *time.Time

	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewAssessment creates a brand-new assessment in DRAFT status.
func NewAssessment(
	tenantID string,
	assessmentType valueobject.AssessmentType,
	partnerID, schemeID string,
	assessor Actor,
	now time.Time,
) (Assessment, error) {
	if tenantID == "" {
		return Assessment{}, errors.New("tenant ID is required")
	}
	if assessmentType.IsZero() {
		return Assessment{}, errors.New("assessment type is required")
	}
	if partnerID == "" && schemeID == "" {
		return Assessment{}, errors.New("assessment requires a partner or scheme subject")
	}
	if assessor.IsZero() {
		return Assessment{}, errors.New("assessor is required")
	}

	id := uuid.New().String()
	a := Assessment{
		id:              id,
		tenantID:        tenantID,
		assessmentType:  assessmentType,
		partnerID:       partnerID,
		schemeID:        schemeID,
		status:          valueobject.AssessmentStatusDraft,
		scorePercentage: decimal.Zero,
		decisionBand:    valueobject.DecisionBandUnset,
		assessor:        assessor,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}
	a.domainEvents = append(a.domainEvents, event.NewAssessmentCreated(
		id, tenantID, assessmentType.String(), partnerID, schemeID, assessor.ID,
	))
	return a, nil
}

// ReconstructAssessment rebuilds an aggregate from persistence without
// side-effects.
func ReconstructAssessment(
	id, tenantID string,
	assessmentType valueobject.AssessmentType,
	partnerID, schemeID string,
	status valueobject.AssessmentStatus,
	metrics []Metric,
	totalWeightedScore, maxPossibleScore int,
	scorePercentage decimal.Decimal,
	decisionBand valueobject.DecisionBand,
	recommendations []string,
	assessor, approver Actor,
	submittedAt, approvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Assessment {
	return Assessment{
		id:                 id,
		tenantID:           tenantID,
		assessmentType:     assessmentType,
		partnerID:          partnerID,
		schemeID:           schemeID,
		status:             status,
		metrics:            copyMetrics(metrics),
		totalWeightedScore: totalWeightedScore,
		maxPossibleScore:   maxPossibleScore,
		scorePercentage:    scorePercentage,
		decisionBand:       decisionBand,
		recommendations:    copyStrings(recommendations),
		assessor:           assessor,
		approver:           approver,
		submittedAt:        submittedAt,
		approvedAt:         approvedAt,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Metric collection
// ---------------------------------------------------------------------------

// AddMetric appends a metric. Allowed only while the assessment is editable;
// metric names must be unique within the assessment.
func (a Assessment) AddMetric(m Metric, now time.Time) (Assessment, error) {
	if !a.status.IsEditable() {
		return a, fmt.Errorf("%w: status %s", ErrAssessmentLocked, a.status)
	}
	for _, existing := range a.metrics {
		if existing.Name() == m.Name() {
			return a, fmt.Errorf("%w: %q", ErrDuplicateMetricName, m.Name())
		}
	}
	next := a
	next.metrics = append(copyMetrics(a.metrics), m)
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMetricScored(
		a.id, a.tenantID, m.ID(), m.Name(), m.Category().String(), m.Score(), m.Weight(), m.CreatedBy().ID,
	))
	return next, nil
}

// ReplaceMetric swaps the metric with the same name for a corrected one.
func (a Assessment) ReplaceMetric(m Metric, now time.Time) (Assessment, error) {
	if !a.status.IsEditable() {
		return a, fmt.Errorf("%w: status %s", ErrAssessmentLocked, a.status)
	}
	idx := -1
	for i, existing := range a.metrics {
		if existing.Name() == m.Name() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return a, fmt.Errorf("no metric named %q to replace", m.Name())
	}
	next := a
	next.metrics = copyMetrics(a.metrics)
	next.metrics[idx] = m
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMetricScored(
		a.id, a.tenantID, m.ID(), m.Name(), m.Category().String(), m.Score(), m.Weight(), m.CreatedBy().ID,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Calculated fields
// ---------------------------------------------------------------------------

// RefreshCalculatedFields recomputes the cached aggregate fields from the
// current metric collection. This is the only path that writes them, so a
// successful refresh always leaves the cache consistent with the metrics.
// Calling it twice without metric changes yields identical fields.
func (a Assessment) RefreshCalculatedFields(scorer Scorer, now time.Time) Assessment {
	snap := scorer.Snapshot(a.metrics)
	next := a
	next.totalWeightedScore = snap.TotalWeightedScore
	next.maxPossibleScore = snap.MaxPossibleScore
	next.scorePercentage = snap.ScorePercentage
	next.decisionBand = snap.DecisionBand
	next.recommendations = copyStrings(snap.Recommendations)
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentScoresRefreshed(
		a.id, a.tenantID, snap.TotalWeightedScore, snap.MaxPossibleScore, snap.ScorePercentage, snap.DecisionBand.String(),
	))
	return next
}

// LiveTotalWeightedScore sums the metric collection directly, bypassing the
// cache.
func (a Assessment) LiveTotalWeightedScore() int {
	total := 0
	for _, m := range a.metrics {
		total += m.WeightedScore()
	}
	return total
}

// IsStale reports whether the cached total has drifted from the live metric
// sum. The batch recompute job uses this to pick records to correct.
func (a Assessment) IsStale() bool {
	return a.totalWeightedScore != a.LiveTotalWeightedScore()
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// SubmitForReview transitions DRAFT -> IN_REVIEW and records submission
// attribution. Callers refresh calculated fields first so the decision band
// reflects current metrics.
func (a Assessment) SubmitForReview(actor Actor, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	// Only a fresh draft may be submitted; NEEDS_INFO resubmission goes
	// through ResubmitForReview so the two paths stay auditable.
	if !a.status.Equal(valueobject.AssessmentStatusDraft) {
		return a, a.transitionError(valueobject.AssessmentStatusInReview)
	}
	next := a
	next.status = valueobject.AssessmentStatusInReview
	next.submittedAt = &now
	if next.assessor.IsZero() {
		next.assessor = actor
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentSubmitted(
		a.id, a.tenantID, actor.ID, a.decisionBand.String(),
	))
	return next, nil
}

// ResubmitForReview returns a NEEDS_INFO assessment to review once the
// requested information has been supplied.
func (a Assessment) ResubmitForReview(actor Actor, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	if !a.status.Equal(valueobject.AssessmentStatusNeedsInfo) {
		return a, a.transitionError(valueobject.AssessmentStatusInReview)
	}
	next := a
	next.status = valueobject.AssessmentStatusInReview
	next.submittedAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentSubmitted(
		a.id, a.tenantID, actor.ID, a.decisionBand.String(),
	))
	return next, nil
}

// Approve transitions IN_REVIEW -> APPROVED and records the approver.
func (a Assessment) Approve(actor Actor, decision, comments string, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	if err := a.guardTransition(valueobject.AssessmentStatusApproved); err != nil {
		return a, err
	}
	next := a
	next.status = valueobject.AssessmentStatusApproved
	next.approver = actor
	next.approvedAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentApproved(
		a.id, a.tenantID, actor.ID, decision, comments,
	))
	return next, nil
}

// Reject transitions IN_REVIEW -> REJECTED and prepends the reason to the
// recommendations so the record carries why it failed.
func (a Assessment) Reject(actor Actor, reason string, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	if strings.TrimSpace(reason) == "" {
		return a, ErrMissingRequiredReason
	}
	if err := a.guardTransition(valueobject.AssessmentStatusRejected); err != nil {
		return a, err
	}
	next := a
	next.status = valueobject.AssessmentStatusRejected
	next.recommendations = append([]string{rejectionMarker + reason}, copyStrings(a.recommendations)...)
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentRejected(
		a.id, a.tenantID, actor.ID, reason,
	))
	return next, nil
}

// RequestInfo transitions IN_REVIEW -> NEEDS_INFO, reopening metric edits.
func (a Assessment) RequestInfo(actor Actor, note string, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	if err := a.guardTransition(valueobject.AssessmentStatusNeedsInfo); err != nil {
		return a, err
	}
	next := a
	next.status = valueobject.AssessmentStatusNeedsInfo
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentInfoRequested(
		a.id, a.tenantID, actor.ID, note,
	))
	return next, nil
}

// ResumeDraft transitions IN_REVIEW or NEEDS_INFO back to DRAFT.
func (a Assessment) ResumeDraft(actor Actor, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	if err := a.guardTransition(valueobject.AssessmentStatusDraft); err != nil {
		return a, err
	}
	next := a
	next.status = valueobject.AssessmentStatusDraft
	next.submittedAt = nil
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// Archive moves the assessment to its terminal ARCHIVED state.
func (a Assessment) Archive(actor Actor, now time.Time) (Assessment, error) {
	if actor.IsZero() {
		return a, ErrMissingDecisionMaker
	}
	if err := a.guardTransition(valueobject.AssessmentStatusArchived); err != nil {
		return a, err
	}
	next := a
	next.status = valueobject.AssessmentStatusArchived
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAssessmentArchived(
		a.id, a.tenantID, actor.ID,
	))
	return next, nil
}

func (a Assessment) guardTransition(target valueobject.AssessmentStatus) error {
	if !a.status.CanTransitionTo(target) {
		return a.transitionError(target)
	}
	return nil
}

func (a Assessment) transitionError(target valueobject.AssessmentStatus) error {
	return fmt.Errorf("%w: %s -> %s", valueobject.ErrInvalidStatusTransition, a.status, target)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a Assessment) ID() string                                 { return a.id }
func (a Assessment) TenantID() string                           { return a.tenantID }
func (a Assessment) AssessmentType() valueobject.AssessmentType { return a.assessmentType }
func (a Assessment) PartnerID() string                          { return a.partnerID }
func (a Assessment) SchemeID() string                           { return a.schemeID }
func (a Assessment) Status() valueobject.AssessmentStatus       { return a.status }
func (a Assessment) Metrics() []Metric                          { return copyMetrics(a.metrics) }
func (a Assessment) TotalWeightedScore() int                    { return a.totalWeightedScore }
func (a Assessment) MaxPossibleScore() int                      { return a.maxPossibleScore }
func (a Assessment) ScorePercentage() decimal.Decimal           { return a.scorePercentage }
func (a Assessment) DecisionBand() valueobject.DecisionBand     { return a.decisionBand }
func (a Assessment) Recommendations() []string                  { return copyStrings(a.recommendations) }
func (a Assessment) Assessor() Actor                            { return a.assessor }
func (a Assessment) Approver() Actor                            { return a.approver }
func (a Assessment) SubmittedAt() *time.Time                    { return a.submittedAt }
func (a Assessment) ApprovedAt() *time.Time                     { return a.approvedAt }
func (a Assessment) Version() int                               { return a.version }
func (a Assessment) CreatedAt() time.Time                       { return a.createdAt }
func (a Assessment) UpdatedAt() time.Time                       { return a.updatedAt }
func (a Assessment) DomainEvents() []event.DomainEvent          { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a Assessment) ClearEvents() Assessment {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}

func copyMetrics(src []Metric) []Metric {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Metric, len(src))
	copy(dst, src)
	return dst
}

func copyStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
