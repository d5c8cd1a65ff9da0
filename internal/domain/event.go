package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventEnter EventType = "ENTER"
	EventExit  EventType = "EXIT"
)

// GeofenceEvent is the append-only audit record of a boundary crossing.
// The engine never mutates or deletes it.
type GeofenceEvent struct {
	ID        uuid.UUID `json:"id"`
	WorkerID  uuid.UUID `json:"worker_id"`
	JobsiteID uuid.UUID `json:"jobsite_id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	AccuracyM *float64  `json:"accuracy_m,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplyAction string

const (
	ActionOpened    ApplyAction = "opened"
	ActionClosed    ApplyAction = "closed"
	ActionDuplicate ApplyAction = "duplicate"
	ActionOrphan    ApplyAction = "orphan"
	ActionDeferred  ApplyAction = "deferred"
)

// ApplyResult is the structured outcome of feeding one event through the
// entry state machine. Deferred means the event was stored but the state
// transition failed and was queued for reprocessing.
type ApplyResult struct {
	Action  ApplyAction `json:"action"`
	EntryID *uuid.UUID  `json:"entry_id,omitempty"`
}

// OutboxTask points at an event whose state-machine run must be retried.
type OutboxTask struct {
	EventID    uuid.UUID `json:"event_id"`
	Attempts   int       `json:"attempts"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
