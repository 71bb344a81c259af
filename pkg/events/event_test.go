package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "assessment-123"
	tenantID := "tenant-456"

	before := time.Now().UTC()
	event := NewBaseEvent("assessment.submitted", aggregateID, "Assessment", tenantID)
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "assessment.submitted" {
		t.Errorf("expected event type %q, got %q", "assessment.submitted", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Assessment" {
		t.Errorf("expected aggregate type %q, got %q", "Assessment", event.AggregateType())
	}

	if event.TenantID() != tenantID {
		t.Errorf("expected tenant ID %v, got %v", tenantID, event.TenantID())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurred-at between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEvent_UniqueIDs(t *testing.T) {
	a := NewBaseEvent("assessment.approved", "agg-1", "Assessment", "tenant-1")
	b := NewBaseEvent("assessment.approved", "agg-1", "Assessment", "tenant-1")

	if a.EventID() == b.EventID() {
		t.Error("expected distinct event IDs for separate events")
	}
}

func TestBaseEvent_JSONRoundTrip(t *testing.T) {
	event := NewBaseEvent("assessment.rejected", "agg-9", "Assessment", "tenant-2")

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded BaseEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.EventID() != event.EventID() {
		t.Errorf("expected event ID %q, got %q", event.EventID(), decoded.EventID())
	}
	if decoded.EventType() != event.EventType() {
		t.Errorf("expected event type %q, got %q", event.EventType(), decoded.EventType())
	}
	if decoded.TenantID() != event.TenantID() {
		t.Errorf("expected tenant ID %q, got %q", event.TenantID(), decoded.TenantID())
	}
}

func TestEventCollector(t *testing.T) {
	var c EventCollector

	if len(c.Events()) != 0 {
		t.Fatal("expected empty collector")
	}

	c.Record(NewBaseEvent("case.opened", "case-1", "DueDiligenceCase", "tenant-1"))
	c.Record(NewBaseEvent("case.status_changed", "case-1", "DueDiligenceCase", "tenant-1"))

	if len(c.Events()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(c.Events()))
	}

	drained := c.ClearEvents()
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained events, got %d", len(drained))
	}
	if len(c.Events()) != 0 {
		t.Error("expected collector to be empty after ClearEvents")
	}
}
