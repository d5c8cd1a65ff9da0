package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEventRepo(pool *pgxpool.Pool, logger *slog.Logger) *EventRepo {
	return &EventRepo{pool: pool, logger: logger}
}

// Create appends one event to the audit log. Events are never updated or
// deleted after this point.
func (p *EventRepo) Create(ctx context.Context, ev *domain.GeofenceEvent) error {
	const op = "postgres.Event.Create"

	const query = `
		INSERT INTO geofence_events (id, worker_id, jobsite_id, type, ts, accuracy_m, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.WorkerID,
		ev.JobsiteID,
		ev.Type,
		ev.Timestamp,
		ev.AccuracyM,
		ev.Source,
		ev.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EventRepo) Get(ctx context.Context, id uuid.UUID) (*domain.GeofenceEvent, error) {
	const op = "postgres.Event.Get"

	const query = `
		SELECT id, worker_id, jobsite_id, type, ts, accuracy_m, source, created_at
		FROM geofence_events
		WHERE id = $1
	`

	var ev domain.GeofenceEvent
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&ev.ID,
		&ev.WorkerID,
		&ev.JobsiteID,
		&ev.Type,
		&ev.Timestamp,
		&ev.AccuracyM,
		&ev.Source,
		&ev.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &ev, nil
}

func (p *EventRepo) List(ctx context.Context, f domain.EventFilter) ([]*domain.GeofenceEvent, int64, error) {
	const op = "postgres.Event.List"

	page := f.Page
	limit := f.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	where := " WHERE 1=1"
	args := []any{}
	if f.WorkerID != nil {
		args = append(args, *f.WorkerID)
		where += fmt.Sprintf(" AND worker_id = $%d", len(args))
	}
	if f.JobsiteID != nil {
		args = append(args, *f.JobsiteID)
		where += fmt.Sprintf(" AND jobsite_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where += fmt.Sprintf(" AND ts >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += fmt.Sprintf(" AND ts <= $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM geofence_events` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `
		SELECT id, worker_id, jobsite_id, type, ts, accuracy_m, source, created_at
		FROM geofence_events` + where + fmt.Sprintf(`
		ORDER BY ts DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var events []*domain.GeofenceEvent
	for rows.Next() {
		var ev domain.GeofenceEvent
		if err := rows.Scan(
			&ev.ID,
			&ev.WorkerID,
			&ev.JobsiteID,
			&ev.Type,
			&ev.Timestamp,
			&ev.AccuracyM,
			&ev.Source,
			&ev.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return events, total, nil
}
