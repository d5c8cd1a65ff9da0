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

const entryColumns = `id, worker_id, jobsite_id, start_at, end_at, duration_minutes, status, event_ids, modified_by, created_at, updated_at`

type EntryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEntryRepo(pool *pgxpool.Pool, logger *slog.Logger) *EntryRepo {
	return &EntryRepo{pool: pool, logger: logger}
}

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := row.Scan(
		&entry.ID,
		&entry.WorkerID,
		&entry.JobsiteID,
		&entry.StartAt,
		&entry.EndAt,
		&entry.DurationMinutes,
		&entry.Status,
		&entry.EventIDs,
		&entry.ModifiedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// InsertOpen opens a new entry unless the pair already has one. The partial
// unique index on (worker_id, jobsite_id) WHERE end_at IS NULL makes the
// "at most one open entry" invariant hold under concurrent inserts; a lost
// race reports inserted == false instead of an error.
func (p *EntryRepo) InsertOpen(ctx context.Context, entry *domain.TimeEntry) (bool, error) {
	const op = "postgres.Entry.InsertOpen"

	const query = `
		INSERT INTO time_entries (id, worker_id, jobsite_id, start_at, status, event_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (worker_id, jobsite_id) WHERE end_at IS NULL DO NOTHING
	`

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = now
	}

	cmd, err := p.pool.Exec(ctx, query,
		entry.ID,
		entry.WorkerID,
		entry.JobsiteID,
		entry.StartAt,
		entry.Status,
		entry.EventIDs,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected() == 1, nil
}

// CloseOpen closes the single open entry for the pair in one statement.
// The duration is computed in SQL from the stored start so two concurrent
// closes cannot both succeed: the second finds no open row and gets
// ErrNotFound.
func (p *EntryRepo) CloseOpen(ctx context.Context, workerID, jobsiteID uuid.UUID, endAt time.Time, eventID uuid.UUID) (*domain.TimeEntry, error) {
	const op = "postgres.Entry.CloseOpen"

	const query = `
		UPDATE time_entries
		SET end_at = $3,
		    duration_minutes = floor(extract(epoch FROM ($3::timestamptz - start_at)) / 60)::int,
		    event_ids = array_append(event_ids, $4),
		    updated_at = $5
		WHERE id = (
			SELECT id FROM time_entries
			WHERE worker_id = $1 AND jobsite_id = $2 AND end_at IS NULL
			ORDER BY start_at DESC
			LIMIT 1
		)
		RETURNING ` + entryColumns

	entry, err := scanEntry(p.pool.QueryRow(ctx, query, workerID, jobsiteID, endAt, eventID, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return entry, nil
}

func (p *EntryRepo) Get(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	const op = "postgres.Entry.Get"

	const query = `SELECT ` + entryColumns + ` FROM time_entries WHERE id = $1`

	entry, err := scanEntry(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return entry, nil
}

func (p *EntryRepo) List(ctx context.Context, f domain.EntryFilter) ([]*domain.TimeEntry, int64, error) {
	const op = "postgres.Entry.List"

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
	if f.Status != nil {
		args = append(args, *f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where += fmt.Sprintf(" AND start_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += fmt.Sprintf(" AND start_at <= $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM time_entries` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + entryColumns + ` FROM time_entries` + where + fmt.Sprintf(`
		ORDER BY start_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return entries, total, nil
}

func (p *EntryRepo) Update(ctx context.Context, entry *domain.TimeEntry) error {
	const op = "postgres.Entry.Update"

	const query = `
		UPDATE time_entries
		SET start_at = $2,
		    end_at = $3,
		    duration_minutes = $4,
		    status = $5,
		    modified_by = $6,
		    updated_at = $7
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		entry.ID,
		entry.StartAt,
		entry.EndAt,
		entry.DurationMinutes,
		entry.Status,
		entry.ModifiedBy,
		entry.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Entry.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EntryRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.EntryStatus) error {
	const op = "postgres.Entry.SetStatus"

	const query = `
		UPDATE time_entries
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Approve flips PENDING or DISPUTED to APPROVED. Approving an already
// approved entry is a no-op that still returns the entry.
func (p *EntryRepo) Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	const op = "postgres.Entry.Approve"

	const query = `
		UPDATE time_entries
		SET status = 'APPROVED', updated_at = $2
		WHERE id = $1 AND status IN ('PENDING', 'DISPUTED')
		RETURNING ` + entryColumns

	entry, err := scanEntry(p.pool.QueryRow(ctx, query, id, time.Now().UTC()))
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	// No row updated: either the entry does not exist or it is already
	// APPROVED. Distinguish with a plain read.
	return p.Get(ctx, id)
}

// SumApprovedMinutes totals approved closed entries whose start falls in
// [from, to]. Open entries carry NULL durations and never count.
func (p *EntryRepo) SumApprovedMinutes(ctx context.Context, workerID uuid.UUID, from, to time.Time) (int, error) {
	const op = "postgres.Entry.SumApprovedMinutes"

	const query = `
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM time_entries
		WHERE worker_id = $1
		  AND status = 'APPROVED'
		  AND duration_minutes IS NOT NULL
		  AND start_at >= $2
		  AND start_at <= $3
	`

	var total int
	if err := p.pool.QueryRow(ctx, query, workerID, from, to).Scan(&total); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return total, nil
}
