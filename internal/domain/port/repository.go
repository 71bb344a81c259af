package port

import (
	"context"
	"errors"

	"github.com/enterpriseland/assessment-service/internal/domain/event"
	"github.com/enterpriseland/assessment-service/internal/domain/model"
)

var (
	// ErrNotFound is returned when a repository lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict is returned when an optimistic save loses the race.
	ErrVersionConflict = errors.New("version conflict")
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// AssessmentRepository persists and retrieves assessments with their metrics.
type AssessmentRepository interface {
	Save(ctx context.Context, a model.Assessment) error
	FindByID(ctx context.Context, tenantID, id string) (model.Assessment, error)
	FindByTenant(ctx context.Context, tenantID string) ([]model.Assessment, error)
	// ListAll streams every stored assessment; the batch recompute job uses
	// it across tenants.
	ListAll(ctx context.Context) ([]model.Assessment, error)
}

// CaseRepository persists and retrieves due diligence cases.
type CaseRepository interface {
	Save(ctx context.Context, c model.DueDiligenceCase) error
	FindByID(ctx context.Context, tenantID, id string) (model.DueDiligenceCase, error)
	FindByReference(ctx context.Context, tenantID, reference string) (model.DueDiligenceCase, error)
	// NextSequence returns the next per-year case number used to build the
	// DD<year><seq> reference.
	NextSequence(ctx context.Context, year int) (int, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
