package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/google/uuid"
)

type assignmentService struct {
	assignments AssignmentRepository
	jobsites    JobsiteRepository
}

func NewAssignmentService(assignments AssignmentRepository, jobsites JobsiteRepository) AssignmentService {
	return &assignmentService{assignments: assignments, jobsites: jobsites}
}

// Create links a worker to a jobsite. The duplicate pair maps to Conflict
// via the storage unique constraint.
func (s *assignmentService) Create(ctx context.Context, req domain.CreateAssignmentRequest) (uuid.UUID, error) {
	const op = "service.Assignments.Create"

	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	jobsiteID, err := uuid.Parse(req.JobsiteID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if _, err := s.jobsites.Get(ctx, jobsiteID); err != nil {
		return uuid.Nil, err
	}

	assignment := &domain.Assignment{
		ID:        uuid.New(),
		WorkerID:  workerID,
		JobsiteID: jobsiteID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrConflict)
		}
		return uuid.Nil, err
	}
	return assignment.ID, nil
}

func (s *assignmentService) List(ctx context.Context, f domain.AssignmentFilter) ([]*domain.Assignment, error) {
	return s.assignments.List(ctx, f)
}
