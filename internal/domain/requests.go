package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportEventRequest struct {
	WorkerID  string     `json:"worker_id" validate:"required,uuid"`
	JobsiteID string     `json:"jobsite_id" validate:"required,uuid"`
	Type      EventType  `json:"type" validate:"required,event_type"`
	Timestamp time.Time  `json:"timestamp" validate:"required"`
	AccuracyM *float64   `json:"accuracy_m" validate:"omitempty,min=0"`
	Source    string     `json:"source" validate:"omitempty,max=64"`
}

type ReportEventResponse struct {
	Event  *GeofenceEvent `json:"event"`
	Result ApplyResult    `json:"result"`
}

type GeofenceCheckRequest struct {
	WorkerID string  `json:"worker_id" validate:"required,uuid"`
	Lat      float64 `json:"lat" validate:"required,lat"`
	Lng      float64 `json:"lng" validate:"required,lng"`
}

type GeofenceCheckResponse struct {
	Jobsites []NearbyJobsite `json:"jobsites"`
}

// NearbyJobsite is one jobsite whose boundary contains the checked point.
type NearbyJobsite struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DistanceM float64   `json:"distance_m"`
}

// CachedJobsite is the trimmed jobsite shape kept in the geofence cache.
type CachedJobsite struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	RadiusM float64   `json:"radius_m"`
}

type CreateJobsiteRequest struct {
	OrgID   string  `json:"org_id" validate:"required,uuid"`
	Name    string  `json:"name" validate:"required,max=200"`
	Lat     float64 `json:"lat" validate:"required,lat"`
	Lng     float64 `json:"lng" validate:"required,lng"`
	RadiusM float64 `json:"radius_m" validate:"required,radius_m"`
}

type JobsiteFilter struct {
	OrgID *uuid.UUID
	Page  int
	Limit int
}

type CreateAssignmentRequest struct {
	WorkerID  string `json:"worker_id" validate:"required,uuid"`
	JobsiteID string `json:"jobsite_id" validate:"required,uuid"`
}

type AssignmentFilter struct {
	WorkerID  *uuid.UUID
	JobsiteID *uuid.UUID
}

type EventFilter struct {
	WorkerID  *uuid.UUID
	JobsiteID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

type EntryFilter struct {
	WorkerID  *uuid.UUID
	JobsiteID *uuid.UUID
	Status    *EntryStatus
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

// UpdateTimeEntryRequest is the manual-edit path. Any change to StartAt or
// EndAt recomputes the duration; ModifiedBy marks the entry as hand-edited.
type UpdateTimeEntryRequest struct {
	StartAt    *time.Time   `json:"start_at"`
	EndAt      *time.Time   `json:"end_at"`
	Status     *EntryStatus `json:"status" validate:"omitempty,oneof=PENDING APPROVED DISPUTED"`
	ModifiedBy string       `json:"modified_by" validate:"required,uuid"`
}

type CreateDisputeRequest struct {
	TimeEntryID string `json:"time_entry_id" validate:"required,uuid"`
	RaisedBy    string `json:"raised_by" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required,min=1,max=1000"`
}

type ResolveDisputeRequest struct {
	Resolution string `json:"resolution" validate:"required,min=1,max=1000"`
	ResolvedBy string `json:"resolved_by" validate:"required,uuid"`
}

type DisputeFilter struct {
	TimeEntryID *uuid.UUID
	Open        *bool
	Page        int
	Limit       int
}

type CalculateSummaryRequest struct {
	WorkerID  string    `json:"worker_id" validate:"required,uuid"`
	WeekStart time.Time `json:"week_start" validate:"required"`
}

type SummaryFilter struct {
	WorkerID  *uuid.UUID
	WeekStart *time.Time
	Page      int
	Limit     int
}
