package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
)

type entryService struct {
	entries EntryRepository
	logger  *slog.Logger
}

func NewEntryService(entries EntryRepository, logger *slog.Logger) EntryService {
	return &entryService{entries: entries, logger: logger}
}

func (s *entryService) Get(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	return s.entries.Get(ctx, id)
}

func (s *entryService) List(ctx context.Context, f domain.EntryFilter) ([]*domain.TimeEntry, int64, error) {
	return s.entries.List(ctx, f)
}

// Update is the manual-edit path. Any change to start or end recomputes the
// duration and stamps the entry as hand-edited.
func (s *entryService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	const op = "service.Entries.Update"

	modifiedBy, err := uuid.Parse(req.ModifiedBy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	boundsChanged := false
	if req.StartAt != nil {
		entry.StartAt = req.StartAt.UTC()
		boundsChanged = true
	}
	if req.EndAt != nil {
		endAt := req.EndAt.UTC()
		entry.EndAt = &endAt
		boundsChanged = true
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}

	if boundsChanged {
		if entry.EndAt != nil {
			minutes := DurationMinutes(entry.StartAt, *entry.EndAt)
			entry.DurationMinutes = &minutes
		} else {
			entry.DurationMinutes = nil
		}
	}

	entry.ModifiedBy = &modifiedBy
	entry.UpdatedAt = time.Now().UTC()

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("time entry edited",
		slog.String("entry_id", entry.ID.String()),
		slog.String("modified_by", modifiedBy.String()),
		slog.Bool("bounds_changed", boundsChanged),
	)

	return entry, nil
}

// Delete is administrative only; the engine itself never removes entries.
func (s *entryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.entries.Delete(ctx, id)
}

func (s *entryService) Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	return s.entries.Approve(ctx, id)
}
