package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
)

type jobsiteService struct {
	jobsites JobsiteRepository
}

func NewJobsiteService(jobsites JobsiteRepository) JobsiteService {
	return &jobsiteService{jobsites: jobsites}
}

func (s *jobsiteService) Create(ctx context.Context, req domain.CreateJobsiteRequest) (uuid.UUID, error) {
	const op = "service.Jobsites.Create"

	orgID, err := uuid.Parse(req.OrgID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	site := &domain.Jobsite{
		ID:        uuid.New(),
		OrgID:     orgID,
		Name:      req.Name,
		Lat:       req.Lat,
		Lng:       req.Lng,
		RadiusM:   req.RadiusM,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.jobsites.Create(ctx, site); err != nil {
		return uuid.Nil, err
	}
	return site.ID, nil
}

func (s *jobsiteService) Get(ctx context.Context, id uuid.UUID) (*domain.Jobsite, error) {
	return s.jobsites.Get(ctx, id)
}

func (s *jobsiteService) List(ctx context.Context, f domain.JobsiteFilter) ([]*domain.Jobsite, int64, error) {
	return s.jobsites.List(ctx, f)
}
