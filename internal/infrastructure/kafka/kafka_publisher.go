package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/enterpriseland/assessment-service/internal/domain/event"
	pkgkafka "github.com/enterpriseland/assessment-service/pkg/kafka"
)

// Topics routes events to Kafka topics by aggregate type.
type Topics struct {
	Assessments string
	Cases       string
	// Default receives events whose aggregate type has no dedicated topic.
	Default string
}

// DefaultTopics returns the standard topic layout.
func DefaultTopics() Topics {
	return Topics{
		Assessments: "assessment.events",
		Cases:       "case.events",
		Default:     "assessment.events",
	}
}

func (t Topics) forAggregate(aggregateType string) string {
	switch aggregateType {
	case "Assessment":
		return t.Assessments
	case "DueDiligenceCase":
		return t.Cases
	default:
		return t.Default
	}
}

// EventPublisher implements port.EventPublisher by writing JSON-encoded
// domain events to Kafka, keyed by aggregate ID so one aggregate's events
// stay ordered within a partition.
type EventPublisher struct {
	producer *pkgkafka.Producer
	topics   Topics
	logger   *slog.Logger
}

// NewEventPublisher creates a publisher on top of the shared producer.
func NewEventPublisher(producer *pkgkafka.Producer, topics Topics, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topics:   topics,
		logger:   logger,
	}
}

// Publish serialises and sends domain events, batched per topic.
func (p *EventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	byTopic := make(map[string][]pkgkafka.Message)
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		topic := p.topics.forAggregate(evt.AggregateType())
		p.logger.DebugContext(ctx, "publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"tenant_id", evt.TenantID(),
			"topic", topic,
		)

		byTopic[topic] = append(byTopic[topic], pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"event_id":   evt.EventID(),
				"tenant_id":  evt.TenantID(),
			},
		})
	}

	for topic, messages := range byTopic {
		if err := p.producer.Publish(ctx, topic, messages...); err != nil {
			return fmt.Errorf("failed to publish events to topic %s: %w", topic, err)
		}
	}
	return nil
}
