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

type JobsiteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewJobsiteRepo(pool *pgxpool.Pool, logger *slog.Logger) *JobsiteRepo {
	return &JobsiteRepo{pool: pool, logger: logger}
}

func (p *JobsiteRepo) Create(ctx context.Context, site *domain.Jobsite) error {
	const op = "postgres.Jobsite.Create"

	const query = `
		INSERT INTO jobsites (id, org_id, name, lat, lng, radius_m, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if site.ID == uuid.Nil {
		site.ID = uuid.New()
	}
	if site.CreatedAt.IsZero() {
		site.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		site.ID,
		site.OrgID,
		site.Name,
		site.Lat,
		site.Lng,
		site.RadiusM,
		site.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *JobsiteRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Jobsite, error) {
	const op = "postgres.Jobsite.Get"

	const query = `
		SELECT id, org_id, name, lat, lng, radius_m, created_at
		FROM jobsites
		WHERE id = $1
	`

	var site domain.Jobsite
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&site.ID,
		&site.OrgID,
		&site.Name,
		&site.Lat,
		&site.Lng,
		&site.RadiusM,
		&site.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &site, nil
}

func (p *JobsiteRepo) List(ctx context.Context, f domain.JobsiteFilter) ([]*domain.Jobsite, int64, error) {
	const op = "postgres.Jobsite.List"

	page := f.Page
	limit := f.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	where := ""
	args := []any{}
	if f.OrgID != nil {
		args = append(args, *f.OrgID)
		where = " WHERE org_id = $1"
	}

	countQuery := `SELECT COUNT(*) FROM jobsites` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `
		SELECT id, org_id, name, lat, lng, radius_m, created_at
		FROM jobsites` + where + fmt.Sprintf(`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var sites []*domain.Jobsite
	for rows.Next() {
		var site domain.Jobsite
		if err := rows.Scan(
			&site.ID,
			&site.OrgID,
			&site.Name,
			&site.Lat,
			&site.Lng,
			&site.RadiusM,
			&site.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		sites = append(sites, &site)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return sites, total, nil
}

func (p *JobsiteRepo) ListAll(ctx context.Context) ([]*domain.Jobsite, error) {
	const op = "postgres.Jobsite.ListAll"

	const query = `
		SELECT id, org_id, name, lat, lng, radius_m, created_at
		FROM jobsites
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var sites []*domain.Jobsite
	for rows.Next() {
		var site domain.Jobsite
		if err := rows.Scan(
			&site.ID,
			&site.OrgID,
			&site.Name,
			&site.Lat,
			&site.Lng,
			&site.RadiusM,
			&site.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		sites = append(sites, &site)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return sites, nil
}
