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

const disputeColumns = `id, time_entry_id, raised_by, reason, resolution, resolved_by, resolved_at, created_at`

type DisputeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDisputeRepo(pool *pgxpool.Pool, logger *slog.Logger) *DisputeRepo {
	return &DisputeRepo{pool: pool, logger: logger}
}

func scanDispute(row pgx.Row) (*domain.Dispute, error) {
	var d domain.Dispute
	err := row.Scan(
		&d.ID,
		&d.TimeEntryID,
		&d.RaisedBy,
		&d.Reason,
		&d.Resolution,
		&d.ResolvedBy,
		&d.ResolvedAt,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (p *DisputeRepo) Create(ctx context.Context, d *domain.Dispute) error {
	const op = "postgres.Dispute.Create"

	const query = `
		INSERT INTO disputes (id, time_entry_id, raised_by, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query, d.ID, d.TimeEntryID, d.RaisedBy, d.Reason, d.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *DisputeRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Dispute, error) {
	const op = "postgres.Dispute.Get"

	const query = `SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1`

	d, err := scanDispute(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return d, nil
}

func (p *DisputeRepo) List(ctx context.Context, f domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	const op = "postgres.Dispute.List"

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
	if f.TimeEntryID != nil {
		args = append(args, *f.TimeEntryID)
		where += fmt.Sprintf(" AND time_entry_id = $%d", len(args))
	}
	if f.Open != nil {
		if *f.Open {
			where += " AND resolution IS NULL"
		} else {
			where += " AND resolution IS NOT NULL"
		}
	}

	countQuery := `SELECT COUNT(*) FROM disputes` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + disputeColumns + ` FROM disputes` + where + fmt.Sprintf(`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var disputes []*domain.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		disputes = append(disputes, d)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return disputes, total, nil
}

// Resolve stamps the resolution only while the dispute is still open. A
// second resolve finds no open row; Conflict or NotFound is decided by a
// follow-up read.
func (p *DisputeRepo) Resolve(ctx context.Context, id uuid.UUID, resolution string, resolvedBy uuid.UUID, resolvedAt time.Time) (*domain.Dispute, error) {
	const op = "postgres.Dispute.Resolve"

	const query = `
		UPDATE disputes
		SET resolution = $2, resolved_by = $3, resolved_at = $4
		WHERE id = $1 AND resolution IS NULL
		RETURNING ` + disputeColumns

	d, err := scanDispute(p.pool.QueryRow(ctx, query, id, resolution, resolvedBy, resolvedAt))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	if _, getErr := p.Get(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrConflict)
}
