package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dispute is a worker objection against one time entry. Resolution == nil
// means the dispute is still open.
type Dispute struct {
	ID          uuid.UUID  `json:"id"`
	TimeEntryID uuid.UUID  `json:"time_entry_id"`
	RaisedBy    uuid.UUID  `json:"raised_by"`
	Reason      string     `json:"reason"`
	Resolution  *string    `json:"resolution,omitempty"`
	ResolvedBy  *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (d *Dispute) Resolved() bool {
	return d.Resolution != nil
}
