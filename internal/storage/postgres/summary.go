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

const summaryColumns = `id, worker_id, week_start, total_regular, total_overtime, approval_state, created_at, updated_at`

type SummaryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSummaryRepo(pool *pgxpool.Pool, logger *slog.Logger) *SummaryRepo {
	return &SummaryRepo{pool: pool, logger: logger}
}

func scanSummary(row pgx.Row) (*domain.WeeklySummary, error) {
	var s domain.WeeklySummary
	err := row.Scan(
		&s.ID,
		&s.WorkerID,
		&s.WeekStart,
		&s.TotalRegular,
		&s.TotalOvertime,
		&s.ApprovalState,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the totals for (worker_id, week_start) in one statement.
// A recomputation over an existing row overwrites the totals and always
// drops the approval state back to PENDING; the stored id and created_at
// survive and are scanned back into s.
func (p *SummaryRepo) Upsert(ctx context.Context, s *domain.WeeklySummary) error {
	const op = "postgres.Summary.Upsert"

	const query = `
		INSERT INTO weekly_summaries (id, worker_id, week_start, total_regular, total_overtime, approval_state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (worker_id, week_start) DO UPDATE
		SET total_regular = EXCLUDED.total_regular,
		    total_overtime = EXCLUDED.total_overtime,
		    approval_state = 'PENDING',
		    updated_at = EXCLUDED.updated_at
		RETURNING id, approval_state, created_at
	`

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	err := p.pool.QueryRow(ctx, query,
		s.ID,
		s.WorkerID,
		s.WeekStart,
		s.TotalRegular,
		s.TotalOvertime,
		s.ApprovalState,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID, &s.ApprovalState, &s.CreatedAt)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *SummaryRepo) Get(ctx context.Context, id uuid.UUID) (*domain.WeeklySummary, error) {
	const op = "postgres.Summary.Get"

	const query = `SELECT ` + summaryColumns + ` FROM weekly_summaries WHERE id = $1`

	s, err := scanSummary(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return s, nil
}

func (p *SummaryRepo) List(ctx context.Context, f domain.SummaryFilter) ([]*domain.WeeklySummary, int64, error) {
	const op = "postgres.Summary.List"

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
	if f.WeekStart != nil {
		args = append(args, *f.WeekStart)
		where += fmt.Sprintf(" AND week_start = $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM weekly_summaries` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + summaryColumns + ` FROM weekly_summaries` + where + fmt.Sprintf(`
		ORDER BY week_start DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var summaries []*domain.WeeklySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return summaries, total, nil
}

func (p *SummaryRepo) SetApproval(ctx context.Context, id uuid.UUID, state domain.ApprovalState) error {
	const op = "postgres.Summary.SetApproval"

	const query = `
		UPDATE weekly_summaries
		SET approval_state = $2, updated_at = $3
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, state, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
