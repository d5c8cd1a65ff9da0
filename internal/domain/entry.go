package domain

import (
	"time"

	"github.com/google/uuid"
)

type EntryStatus string

const (
	EntryPending  EntryStatus = "PENDING"
	EntryApproved EntryStatus = "APPROVED"
	EntryDisputed EntryStatus = "DISPUTED"
)

// TimeEntry is one work session. EndAt == nil means the entry is open;
// DurationMinutes stays nil until the entry is closed.
type TimeEntry struct {
	ID              uuid.UUID   `json:"id"`
	WorkerID        uuid.UUID   `json:"worker_id"`
	JobsiteID       uuid.UUID   `json:"jobsite_id"`
	StartAt         time.Time   `json:"start_at"`
	EndAt           *time.Time  `json:"end_at,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	Status          EntryStatus `json:"status"`
	EventIDs        []uuid.UUID `json:"event_ids"`
	ModifiedBy      *uuid.UUID  `json:"modified_by,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (t *TimeEntry) Open() bool {
	return t.EndAt == nil
}
