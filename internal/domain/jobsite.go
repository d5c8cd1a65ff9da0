package domain

import (
	"time"

	"github.com/google/uuid"
)

type Jobsite struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat" validate:"lat"`       // -90..90
	Lng       float64   `json:"lng" validate:"lng"`       // -180..180
	RadiusM   float64   `json:"radius_m" validate:"radius_m"`
	CreatedAt time.Time `json:"created_at"`
}

// Assignment links a worker to a jobsite. Events for a (worker, jobsite)
// pair are rejected until the pair is assigned.
type Assignment struct {
	ID        uuid.UUID `json:"id"`
	WorkerID  uuid.UUID `json:"worker_id"`
	JobsiteID uuid.UUID `json:"jobsite_id"`
	CreatedAt time.Time `json:"created_at"`
}
