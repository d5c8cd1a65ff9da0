package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryobiguy/timesheet/internal/calendar"
	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
)

type summaryService struct {
	summaries SummaryRepository
	entries   EntryRepository
	logger    *slog.Logger
}

func NewSummaryService(summaries SummaryRepository, entries EntryRepository, logger *slog.Logger) SummaryService {
	return &summaryService{summaries: summaries, entries: entries, logger: logger}
}

// Calculate rolls the worker's APPROVED entries for the containing week
// into regular/overtime totals and upserts the summary. Recomputation
// always resets a prior sign-off back to PENDING.
func (s *summaryService) Calculate(ctx context.Context, req domain.CalculateSummaryRequest) (*domain.WeeklySummary, error) {
	const op = "service.Summaries.Calculate"

	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.WeekStart.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	weekStart := calendar.StartOfWeek(req.WeekStart)
	weekEnd := calendar.WeekEnd(weekStart)

	total, err := s.entries.SumApprovedMinutes(ctx, workerID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	regular, overtime := domain.SplitOvertime(total)

	now := time.Now().UTC()
	summary := &domain.WeeklySummary{
		ID:            uuid.New(),
		WorkerID:      workerID,
		WeekStart:     weekStart,
		TotalRegular:  regular,
		TotalOvertime: overtime,
		ApprovalState: domain.ApprovalPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.summaries.Upsert(ctx, summary); err != nil {
		return nil, err
	}

	s.logger.Info("weekly summary calculated",
		slog.String("worker_id", workerID.String()),
		slog.Time("week_start", weekStart),
		slog.Int("total_regular", regular),
		slog.Int("total_overtime", overtime),
	)

	return summary, nil
}

func (s *summaryService) List(ctx context.Context, f domain.SummaryFilter) ([]*domain.WeeklySummary, int64, error) {
	return s.summaries.List(ctx, f)
}

func (s *summaryService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.summaries.SetApproval(ctx, id, domain.ApprovalApproved)
}
