package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAssignmentRepo(pool *pgxpool.Pool, logger *slog.Logger) *AssignmentRepo {
	return &AssignmentRepo{pool: pool, logger: logger}
}

// Create relies on the (worker_id, jobsite_id) unique constraint; a
// duplicate pair comes back as ErrUniqueViolation.
func (p *AssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	const op = "postgres.Assignment.Create"

	const query = `
		INSERT INTO assignments (id, worker_id, jobsite_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query, a.ID, a.WorkerID, a.JobsiteID, a.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AssignmentRepo) Exists(ctx context.Context, workerID, jobsiteID uuid.UUID) (bool, error) {
	const op = "postgres.Assignment.Exists"

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM assignments
			WHERE worker_id = $1 AND jobsite_id = $2
		)
	`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, workerID, jobsiteID).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return exists, nil
}

func (p *AssignmentRepo) List(ctx context.Context, f domain.AssignmentFilter) ([]*domain.Assignment, error) {
	const op = "postgres.Assignment.List"

	query := `
		SELECT id, worker_id, jobsite_id, created_at
		FROM assignments
		WHERE 1=1`
	args := []any{}
	if f.WorkerID != nil {
		args = append(args, *f.WorkerID)
		query += fmt.Sprintf(" AND worker_id = $%d", len(args))
	}
	if f.JobsiteID != nil {
		args = append(args, *f.JobsiteID)
		query += fmt.Sprintf(" AND jobsite_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.JobsiteID, &a.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return assignments, nil
}
