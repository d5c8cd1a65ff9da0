package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/internal/geo"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
)

const defaultEventSource = "device"

type ingestionService struct {
	jobsites    JobsiteRepository
	assignments AssignmentRepository
	events      EventRepository
	entries     EntryRepository
	cache       JobsiteCacheService
	outbox      ProcessingOutbox
	logger      *slog.Logger
	cacheTTL    time.Duration
}

func NewIngestionService(
	jobsites JobsiteRepository,
	assignments AssignmentRepository,
	events EventRepository,
	entries EntryRepository,
	cache JobsiteCacheService,
	outbox ProcessingOutbox,
	logger *slog.Logger,
	cacheTTL time.Duration,
) IngestionService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ingestionService{
		jobsites:    jobsites,
		assignments: assignments,
		events:      events,
		entries:     entries,
		cache:       cache,
		outbox:      outbox,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Report validates the event against the worker's assignments, durably
// stores it, then runs the entry state machine. The event write is the
// source of truth: a state-machine failure is queued for reprocessing and
// never surfaced to the device.
func (s *ingestionService) Report(ctx context.Context, req domain.ReportEventRequest) (domain.ReportEventResponse, error) {
	const op = "service.Ingestion.Report"

	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return domain.ReportEventResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	jobsiteID, err := uuid.Parse(req.JobsiteID)
	if err != nil {
		return domain.ReportEventResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.Timestamp.IsZero() {
		return domain.ReportEventResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if _, err := s.jobsites.Get(ctx, jobsiteID); err != nil {
		return domain.ReportEventResponse{}, err
	}

	assigned, err := s.assignments.Exists(ctx, workerID, jobsiteID)
	if err != nil {
		return domain.ReportEventResponse{}, err
	}
	if !assigned {
		return domain.ReportEventResponse{}, fmt.Errorf("%s: worker not assigned to jobsite: %w", op, e.ErrNotFound)
	}

	source := req.Source
	if source == "" {
		source = defaultEventSource
	}

	event := &domain.GeofenceEvent{
		ID:        uuid.New(),
		WorkerID:  workerID,
		JobsiteID: jobsiteID,
		Type:      req.Type,
		Timestamp: req.Timestamp.UTC(),
		AccuracyM: req.AccuracyM,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.logger.Error("event persist failed", slog.String("op", op), slog.Any("error", err))
		return domain.ReportEventResponse{}, err
	}

	result := s.applyOrDefer(ctx, event)

	s.logger.Info("event ingested",
		slog.String("event_id", event.ID.String()),
		slog.String("worker_id", workerID.String()),
		slog.String("jobsite_id", jobsiteID.String()),
		slog.String("type", string(event.Type)),
		slog.String("action", string(result.Action)),
	)

	return domain.ReportEventResponse{Event: event, Result: result}, nil
}

// Reapply re-runs the state machine for an already stored event. Used by
// the outbox worker; failures surface so the worker can retry.
func (s *ingestionService) Reapply(ctx context.Context, eventID uuid.UUID) (domain.ApplyResult, error) {
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return domain.ApplyResult{}, err
	}
	return applyEvent(ctx, s.entries, event)
}

func (s *ingestionService) ListEvents(ctx context.Context, f domain.EventFilter) ([]*domain.GeofenceEvent, int64, error) {
	return s.events.List(ctx, f)
}

// CheckLocation reports which jobsite boundaries contain the given point.
// Jobsites come from the cache when warm, from storage otherwise.
func (s *ingestionService) CheckLocation(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error) {
	const op = "service.Ingestion.CheckLocation"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return domain.GeofenceCheckResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	sites, err := s.cache.GetAll(ctx)
	if err != nil {
		s.logger.Warn("jobsite cache read failed", slog.String("op", op), slog.Any("error", err))
		sites = nil
	}

	if sites == nil {
		all, err := s.jobsites.ListAll(ctx)
		if err != nil {
			return domain.GeofenceCheckResponse{}, err
		}
		sites = make([]domain.CachedJobsite, 0, len(all))
		for _, site := range all {
			sites = append(sites, domain.CachedJobsite{
				ID:      site.ID,
				Name:    site.Name,
				Lat:     site.Lat,
				Lng:     site.Lng,
				RadiusM: site.RadiusM,
			})
		}
		if err := s.cache.SetAll(ctx, sites, s.cacheTTL); err != nil {
			s.logger.Warn("jobsite cache write failed", slog.String("op", op), slog.Any("error", err))
		}
	}

	nearby := make([]domain.NearbyJobsite, 0)
	for _, site := range sites {
		dist := geo.DistanceMeters(req.Lat, req.Lng, site.Lat, site.Lng)
		if dist <= site.RadiusM {
			nearby = append(nearby, domain.NearbyJobsite{
				ID:        site.ID,
				Name:      site.Name,
				DistanceM: dist,
			})
		}
	}

	return domain.GeofenceCheckResponse{Jobsites: nearby}, nil
}

func (s *ingestionService) applyOrDefer(ctx context.Context, event *domain.GeofenceEvent) domain.ApplyResult {
	result, err := applyEvent(ctx, s.entries, event)
	if err == nil {
		return result
	}

	s.logger.Error("state machine failed, deferring event",
		slog.String("event_id", event.ID.String()),
		slog.Any("error", err),
	)

	task := domain.OutboxTask{
		EventID:    event.ID,
		Attempts:   0,
		EnqueuedAt: time.Now().UTC(),
	}
	if enqErr := s.outbox.Enqueue(ctx, task); enqErr != nil {
		s.logger.Error("outbox enqueue failed, event needs manual backfill",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", enqErr),
		)
	}

	return domain.ApplyResult{Action: domain.ActionDeferred}
}

// applyEvent is the two-state machine per (worker, jobsite) pair:
//
//	CLOSED + ENTER -> open a PENDING entry at the event timestamp
//	OPEN   + ENTER -> duplicate, no-op
//	OPEN   + EXIT  -> close the entry, duration computed atomically
//	CLOSED + EXIT  -> orphan, no-op
//
// Duplicate detection rides the storage uniqueness guarantee, not a
// read-then-write check.
func applyEvent(ctx context.Context, entries EntryRepository, event *domain.GeofenceEvent) (domain.ApplyResult, error) {
	switch event.Type {
	case domain.EventEnter:
		now := time.Now().UTC()
		entry := &domain.TimeEntry{
			ID:        uuid.New(),
			WorkerID:  event.WorkerID,
			JobsiteID: event.JobsiteID,
			StartAt:   event.Timestamp,
			Status:    domain.EntryPending,
			EventIDs:  []uuid.UUID{event.ID},
			CreatedAt: now,
			UpdatedAt: now,
		}
		inserted, err := entries.InsertOpen(ctx, entry)
		if err != nil {
			return domain.ApplyResult{}, err
		}
		if !inserted {
			return domain.ApplyResult{Action: domain.ActionDuplicate}, nil
		}
		return domain.ApplyResult{Action: domain.ActionOpened, EntryID: &entry.ID}, nil

	case domain.EventExit:
		entry, err := entries.CloseOpen(ctx, event.WorkerID, event.JobsiteID, event.Timestamp, event.ID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return domain.ApplyResult{Action: domain.ActionOrphan}, nil
			}
			return domain.ApplyResult{}, err
		}
		return domain.ApplyResult{Action: domain.ActionClosed, EntryID: &entry.ID}, nil

	default:
		return domain.ApplyResult{}, fmt.Errorf("apply event: unknown type %q: %w", event.Type, e.ErrInvalidInput)
	}
}
