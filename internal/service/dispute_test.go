package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/internal/service"
	mock_service "github.com/ryobiguy/timesheet/internal/service/mocks"
	"github.com/ryobiguy/timesheet/pkg/e"
)

func TestDisputeCreate_MarksEntryDisputed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disputes := mock_service.NewMockDisputeRepository(ctrl)
	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewDisputeService(disputes, entries, newTestLogger())

	entryID := uuid.New()
	raisedBy := uuid.New()

	entries.EXPECT().Get(gomock.Any(), entryID).Return(&domain.TimeEntry{ID: entryID, Status: domain.EntryApproved}, nil)
	disputes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	entries.EXPECT().SetStatus(gomock.Any(), entryID, domain.EntryDisputed).Return(nil)

	d, err := svc.Create(context.Background(), domain.CreateDisputeRequest{
		TimeEntryID: entryID.String(),
		RaisedBy:    raisedBy.String(),
		Reason:      "hours were trimmed",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if d.TimeEntryID != entryID || d.RaisedBy != raisedBy {
		t.Fatalf("unexpected dispute: %+v", d)
	}
	if d.Resolved() {
		t.Fatalf("fresh dispute must be open")
	}
}

func TestDisputeCreate_MissingEntry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disputes := mock_service.NewMockDisputeRepository(ctrl)
	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewDisputeService(disputes, entries, newTestLogger())

	entryID := uuid.New()
	entries.EXPECT().Get(gomock.Any(), entryID).Return(nil, e.ErrNotFound)

	_, err := svc.Create(context.Background(), domain.CreateDisputeRequest{
		TimeEntryID: entryID.String(),
		RaisedBy:    uuid.New().String(),
		Reason:      "x",
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDisputeResolve_ReturnsEntryToPending(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disputes := mock_service.NewMockDisputeRepository(ctrl)
	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewDisputeService(disputes, entries, newTestLogger())

	disputeID := uuid.New()
	entryID := uuid.New()
	resolvedBy := uuid.New()
	resolution := "entry fixed by hand"

	disputes.EXPECT().
		Resolve(gomock.Any(), disputeID, resolution, resolvedBy, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, res string, by uuid.UUID, at time.Time) (*domain.Dispute, error) {
			return &domain.Dispute{
				ID:          id,
				TimeEntryID: entryID,
				Resolution:  &res,
				ResolvedBy:  &by,
				ResolvedAt:  &at,
			}, nil
		})
	// resolution sends the entry back to PENDING, never straight to APPROVED
	entries.EXPECT().SetStatus(gomock.Any(), entryID, domain.EntryPending).Return(nil)

	d, err := svc.Resolve(context.Background(), disputeID, domain.ResolveDisputeRequest{
		Resolution: resolution,
		ResolvedBy: resolvedBy.String(),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !d.Resolved() {
		t.Fatalf("expected resolved dispute")
	}
}

func TestDisputeResolve_AlreadyResolved_Conflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disputes := mock_service.NewMockDisputeRepository(ctrl)
	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewDisputeService(disputes, entries, newTestLogger())

	disputeID := uuid.New()
	disputes.EXPECT().
		Resolve(gomock.Any(), disputeID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, e.ErrConflict)

	_, err := svc.Resolve(context.Background(), disputeID, domain.ResolveDisputeRequest{
		Resolution: "again",
		ResolvedBy: uuid.New().String(),
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}
}
