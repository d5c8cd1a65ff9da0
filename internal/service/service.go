package service

import (
	"context"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

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
	// InsertOpen creates the open entry for (worker, jobsite) unless one
	// already exists; the storage layer guarantees atomicity. Returns false
	// on the duplicate-ENTER no-op.
	InsertOpen(ctx context.Context, entry *domain.TimeEntry) (bool, error)
	// CloseOpen closes the most recently started open entry for the pair,
	// computing the duration in the same statement. ErrNotFound means there
	// was no open entry (orphan EXIT).
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
	// Resolve sets the resolution only when the dispute is still open.
	// ErrConflict when already resolved, ErrNotFound when missing.
	Resolve(ctx context.Context, id uuid.UUID, resolution string, resolvedBy uuid.UUID, resolvedAt time.Time) (*domain.Dispute, error)
}

type SummaryRepository interface {
	// Upsert writes totals keyed by (worker, week_start) in one atomic
	// statement and always resets the approval state to PENDING.
	Upsert(ctx context.Context, s *domain.WeeklySummary) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WeeklySummary, error)
	List(ctx context.Context, f domain.SummaryFilter) ([]*domain.WeeklySummary, int64, error)
	SetApproval(ctx context.Context, id uuid.UUID, state domain.ApprovalState) error
}

type JobsiteCacheService interface {
	GetAll(ctx context.Context) ([]domain.CachedJobsite, error)
	SetAll(ctx context.Context, sites []domain.CachedJobsite, ttl time.Duration) error
}

type ProcessingOutbox interface {
	Enqueue(ctx context.Context, task domain.OutboxTask) error
}

type IngestionService interface {
	Report(ctx context.Context, req domain.ReportEventRequest) (domain.ReportEventResponse, error)
	Reapply(ctx context.Context, eventID uuid.UUID) (domain.ApplyResult, error)
	ListEvents(ctx context.Context, f domain.EventFilter) ([]*domain.GeofenceEvent, int64, error)
	CheckLocation(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error)
}

type EntryService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]*domain.TimeEntry, int64, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateTimeEntryRequest) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
}

type DisputeService interface {
	Create(ctx context.Context, req domain.CreateDisputeRequest) (*domain.Dispute, error)
	Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveDisputeRequest) (*domain.Dispute, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Dispute, error)
	List(ctx context.Context, f domain.DisputeFilter) ([]*domain.Dispute, int64, error)
}

type SummaryService interface {
	Calculate(ctx context.Context, req domain.CalculateSummaryRequest) (*domain.WeeklySummary, error)
	List(ctx context.Context, f domain.SummaryFilter) ([]*domain.WeeklySummary, int64, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type JobsiteService interface {
	Create(ctx context.Context, req domain.CreateJobsiteRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Jobsite, error)
	List(ctx context.Context, f domain.JobsiteFilter) ([]*domain.Jobsite, int64, error)
}

type AssignmentService interface {
	Create(ctx context.Context, req domain.CreateAssignmentRequest) (uuid.UUID, error)
	List(ctx context.Context, f domain.AssignmentFilter) ([]*domain.Assignment, error)
}

type Service struct {
	Ingestion   IngestionService
	Entries     EntryService
	Disputes    DisputeService
	Summaries   SummaryService
	Jobsites    JobsiteService
	Assignments AssignmentService
}

func NewService(
	ingestion IngestionService,
	entries EntryService,
	disputes DisputeService,
	summaries SummaryService,
	jobsites JobsiteService,
	assignments AssignmentService,
) *Service {
	return &Service{
		Ingestion:   ingestion,
		Entries:     entries,
		Disputes:    disputes,
		Summaries:   summaries,
		Jobsites:    jobsites,
		Assignments: assignments,
	}
}
