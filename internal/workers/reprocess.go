package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ryobiguy/timesheet/internal/config"
	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/internal/redis"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
)

// EventReapplier re-runs the entry state machine for a stored event.
type EventReapplier interface {
	Reapply(ctx context.Context, eventID uuid.UUID) (domain.ApplyResult, error)
}

// Reprocessor drains the outbox of events whose state-machine run failed
// at ingestion time and reapplies them. The event row is already durable;
// only the open/close transition is redone, and the state machine is
// idempotent under replays.
type Reprocessor struct {
	logger    *slog.Logger
	cfg       config.OutboxConfig
	outbox    *redis.Outbox
	ingestion EventReapplier
}

func NewReprocessor(logger *slog.Logger, cfg config.OutboxConfig, outbox *redis.Outbox, ingestion EventReapplier) *Reprocessor {
	return &Reprocessor{
		logger:    logger,
		cfg:       cfg,
		outbox:    outbox,
		ingestion: ingestion,
	}
}

func (w *Reprocessor) Run(ctx context.Context) {
	w.logger.Info("reprocessor STARTED", slog.String("key", w.cfg.Key))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reprocessor STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		task, err := w.outbox.BRPop(ctx, w.cfg.PopTimeout)
		if err != nil {
			if errors.Is(err, e.ErrOutboxEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.process(ctx, task)
	}
}

func (w *Reprocessor) process(ctx context.Context, task domain.OutboxTask) {
	result, err := w.ingestion.Reapply(ctx, task.EventID)
	if err == nil {
		w.logger.Info("event reprocessed",
			slog.String("event_id", task.EventID.String()),
			slog.String("action", string(result.Action)),
			slog.Int("attempts", task.Attempts),
		)
		return
	}

	if errors.Is(err, e.ErrNotFound) {
		w.logger.Warn("reprocess dropped, event missing", slog.String("event_id", task.EventID.String()))
		return
	}

	task.Attempts++
	if task.Attempts >= w.cfg.MaxAttempts {
		w.logger.Error("reprocess exhausted, event needs manual backfill",
			slog.String("event_id", task.EventID.String()),
			slog.Int("attempts", task.Attempts),
			slog.Any("error", err),
		)
		return
	}

	w.logger.Warn("reprocess failed, re-enqueueing",
		slog.String("event_id", task.EventID.String()),
		slog.Int("attempt", task.Attempts),
		slog.Any("error", err),
	)

	time.Sleep(time.Duration(task.Attempts) * time.Second)

	if enqErr := w.outbox.Enqueue(ctx, task); enqErr != nil {
		w.logger.Error("re-enqueue failed, event needs manual backfill",
			slog.String("event_id", task.EventID.String()),
			slog.Any("error", enqErr),
		)
	}
}
