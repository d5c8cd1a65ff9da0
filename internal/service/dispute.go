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

type disputeService struct {
	disputes DisputeRepository
	entries  EntryRepository
	logger   *slog.Logger
}

func NewDisputeService(disputes DisputeRepository, entries EntryRepository, logger *slog.Logger) DisputeService {
	return &disputeService{disputes: disputes, entries: entries, logger: logger}
}

// Create raises a dispute and forces the entry into DISPUTED regardless of
// its current status. Open disputes may stack on the same entry.
func (s *disputeService) Create(ctx context.Context, req domain.CreateDisputeRequest) (*domain.Dispute, error) {
	const op = "service.Disputes.Create"

	entryID, err := uuid.Parse(req.TimeEntryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	raisedBy, err := uuid.Parse(req.RaisedBy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if _, err := s.entries.Get(ctx, entryID); err != nil {
		return nil, err
	}

	dispute := &domain.Dispute{
		ID:          uuid.New(),
		TimeEntryID: entryID,
		RaisedBy:    raisedBy,
		Reason:      req.Reason,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.disputes.Create(ctx, dispute); err != nil {
		return nil, err
	}

	if err := s.entries.SetStatus(ctx, entryID, domain.EntryDisputed); err != nil {
		s.logger.Error("entry status update failed after dispute create",
			slog.String("op", op),
			slog.String("dispute_id", dispute.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Info("dispute created",
		slog.String("dispute_id", dispute.ID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return dispute, nil
}

// Resolve closes an open dispute and sends the entry back to PENDING — not
// APPROVED — so approval stays a separate supervisor action.
func (s *disputeService) Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveDisputeRequest) (*domain.Dispute, error) {
	const op = "service.Disputes.Resolve"

	resolvedBy, err := uuid.Parse(req.ResolvedBy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	dispute, err := s.disputes.Resolve(ctx, id, req.Resolution, resolvedBy, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.entries.SetStatus(ctx, dispute.TimeEntryID, domain.EntryPending); err != nil {
		s.logger.Error("entry status reset failed after dispute resolve",
			slog.String("op", op),
			slog.String("dispute_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Info("dispute resolved",
		slog.String("dispute_id", id.String()),
		slog.String("entry_id", dispute.TimeEntryID.String()),
		slog.String("resolved_by", resolvedBy.String()),
	)

	return dispute, nil
}

func (s *disputeService) Get(ctx context.Context, id uuid.UUID) (*domain.Dispute, error) {
	return s.disputes.Get(ctx, id)
}

func (s *disputeService) List(ctx context.Context, f domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	return s.disputes.List(ctx, f)
}
