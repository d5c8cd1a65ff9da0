package postgres

import (
	"context"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"

	"github.com/google/uuid"
)

type JobsiteRepository interface {
	Create(ctx context.Context, site *domain.Jobsite) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Jobsite, error)
	List(ctx context.Context, f domain.JobsiteFilter) ([]*domain.Jobsite, int64, error)
	ListAll(ctx context.Context) ([]*domain.Jobsite, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.Assignment) error
	Exists(ctx context.Context, workerID, jobsiteID uuid.UUID) (bool, error)
	List(ctx context.Context, f domain.AssignmentFilter) ([]*domain.Assignment, error)
}

type EventRepository interface {
	Create(ctx context.Context, ev *domain.GeofenceEvent) error
	Get(ctx context.Context, id uuid.UUID) (*domain.GeofenceEvent, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.GeofenceEvent, int64, error)
}

type EntryRepository interface {
	InsertOpen(ctx context.Context, entry *domain.TimeEntry) (bool, error)
	CloseOpen(ctx context.Context, workerID, jobsiteID uuid.UUID, endAt time.Time, eventID uuid.UUID) (*domain.TimeEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]*domain.TimeEntry, int64, error)
	Update(ctx context.Context, entry *domain.TimeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.EntryStatus) error
	Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	SumApprovedMinutes(ctx context.Context, workerID uuid.UUID, from, to time.Time) (int, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, d *domain.Dispute) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Dispute, error)
	List(ctx context.Context, f domain.DisputeFilter) ([]*domain.Dispute, int64, error)
	Resolve(ctx context.Context, id uuid.UUID, resolution string, resolvedBy uuid.UUID, resolvedAt time.Time) (*domain.Dispute, error)
}

type SummaryRepository interface {
	Upsert(ctx context.Context, s *domain.WeeklySummary) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WeeklySummary, error)
	List(ctx context.Context, f domain.SummaryFilter) ([]*domain.WeeklySummary, int64, error)
	SetApproval(ctx context.Context, id uuid.UUID, state domain.ApprovalState) error
}
