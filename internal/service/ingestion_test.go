package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/internal/service"
	mock_service "github.com/ryobiguy/timesheet/internal/service/mocks"
	"github.com/ryobiguy/timesheet/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type ingestionMocks struct {
	jobsites    *mock_service.MockJobsiteRepository
	assignments *mock_service.MockAssignmentRepository
	events      *mock_service.MockEventRepository
	entries     *mock_service.MockEntryRepository
	cache       *mock_service.MockJobsiteCacheService
	outbox      *mock_service.MockProcessingOutbox
}

func newIngestion(ctrl *gomock.Controller) (service.IngestionService, ingestionMocks) {
	m := ingestionMocks{
		jobsites:    mock_service.NewMockJobsiteRepository(ctrl),
		assignments: mock_service.NewMockAssignmentRepository(ctrl),
		events:      mock_service.NewMockEventRepository(ctrl),
		entries:     mock_service.NewMockEntryRepository(ctrl),
		cache:       mock_service.NewMockJobsiteCacheService(ctrl),
		outbox:      mock_service.NewMockProcessingOutbox(ctrl),
	}
	svc := service.NewIngestionService(
		m.jobsites, m.assignments, m.events, m.entries, m.cache, m.outbox,
		newTestLogger(), 5*time.Minute,
	)
	return svc, m
}

func TestReport_Enter_OpensEntry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()
	ts := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(true, nil)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.entries.EXPECT().
		InsertOpen(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.TimeEntry) (bool, error) {
			if entry.WorkerID != workerID || entry.JobsiteID != jobsiteID {
				t.Fatalf("unexpected entry pair: %+v", entry)
			}
			if !entry.StartAt.Equal(ts) {
				t.Fatalf("expected start at event timestamp, got %v", entry.StartAt)
			}
			if entry.Status != domain.EntryPending {
				t.Fatalf("expected PENDING, got %s", entry.Status)
			}
			if len(entry.EventIDs) != 1 {
				t.Fatalf("expected enter event linked, got %v", entry.EventIDs)
			}
			return true, nil
		})

	resp, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventEnter,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if resp.Result.Action != domain.ActionOpened {
		t.Fatalf("expected action=opened, got %s", resp.Result.Action)
	}
	if resp.Result.EntryID == nil {
		t.Fatalf("expected entry id in result")
	}
	if resp.Event == nil || resp.Event.Source != "device" {
		t.Fatalf("expected default source, got %+v", resp.Event)
	}
}

func TestReport_DuplicateEnter_NoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(true, nil)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.entries.EXPECT().InsertOpen(gomock.Any(), gomock.Any()).Return(false, nil)

	resp, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventEnter,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if resp.Result.Action != domain.ActionDuplicate {
		t.Fatalf("expected action=duplicate, got %s", resp.Result.Action)
	}
	if resp.Result.EntryID != nil {
		t.Fatalf("duplicate must not carry an entry id")
	}
}

func TestReport_Exit_ClosesEntry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()
	entryID := uuid.New()
	ts := time.Date(2025, 6, 2, 16, 30, 0, 0, time.UTC)
	minutes := 510

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(true, nil)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.entries.EXPECT().
		CloseOpen(gomock.Any(), workerID, jobsiteID, ts, gomock.Any()).
		Return(&domain.TimeEntry{ID: entryID, DurationMinutes: &minutes}, nil)

	resp, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventExit,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if resp.Result.Action != domain.ActionClosed {
		t.Fatalf("expected action=closed, got %s", resp.Result.Action)
	}
	if resp.Result.EntryID == nil || *resp.Result.EntryID != entryID {
		t.Fatalf("expected closed entry id %s, got %v", entryID, resp.Result.EntryID)
	}
}

func TestReport_OrphanExit_NoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(true, nil)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.entries.EXPECT().
		CloseOpen(gomock.Any(), workerID, jobsiteID, gomock.Any(), gomock.Any()).
		Return(nil, e.ErrNotFound)

	resp, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventExit,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if resp.Result.Action != domain.ActionOrphan {
		t.Fatalf("expected action=orphan, got %s", resp.Result.Action)
	}
}

func TestReport_UnassignedWorker_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(false, nil)

	_, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventEnter,
		Timestamp: time.Now().UTC(),
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestReport_StateMachineFailure_DefersToOutbox(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(true, nil)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.entries.EXPECT().InsertOpen(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
	m.outbox.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task domain.OutboxTask) error {
			if task.EventID == uuid.Nil {
				t.Fatalf("expected event id in outbox task")
			}
			if task.Attempts != 0 {
				t.Fatalf("expected fresh task, got attempts=%d", task.Attempts)
			}
			return nil
		})

	resp, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventEnter,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("state machine failure must not surface to the device: %v", err)
	}

	if resp.Result.Action != domain.ActionDeferred {
		t.Fatalf("expected action=deferred, got %s", resp.Result.Action)
	}
}

func TestReport_EventPersistFailure_Surfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	workerID := uuid.New()
	jobsiteID := uuid.New()

	m.jobsites.EXPECT().Get(gomock.Any(), jobsiteID).Return(&domain.Jobsite{ID: jobsiteID}, nil)
	m.assignments.EXPECT().Exists(gomock.Any(), workerID, jobsiteID).Return(true, nil)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  workerID.String(),
		JobsiteID: jobsiteID.String(),
		Type:      domain.EventEnter,
		Timestamp: time.Now().UTC(),
	})
	if err == nil {
		t.Fatalf("expected error when the event row cannot be written")
	}
}

func TestReport_InvalidWorkerID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newIngestion(ctrl)

	_, err := svc.Report(context.Background(), domain.ReportEventRequest{
		WorkerID:  "not-a-uuid",
		JobsiteID: uuid.New().String(),
		Type:      domain.EventEnter,
		Timestamp: time.Now().UTC(),
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestReapply_ReplaysStoredEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	eventID := uuid.New()
	workerID := uuid.New()
	jobsiteID := uuid.New()

	m.events.EXPECT().Get(gomock.Any(), eventID).Return(&domain.GeofenceEvent{
		ID:        eventID,
		WorkerID:  workerID,
		JobsiteID: jobsiteID,
		Type:      domain.EventEnter,
		Timestamp: time.Now().UTC(),
	}, nil)
	m.entries.EXPECT().InsertOpen(gomock.Any(), gomock.Any()).Return(true, nil)

	result, err := svc.Reapply(context.Background(), eventID)
	if err != nil {
		t.Fatalf("Reapply: %v", err)
	}
	if result.Action != domain.ActionOpened {
		t.Fatalf("expected action=opened, got %s", result.Action)
	}
}

func TestCheckLocation_CacheMissFallsBackToStorage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	inside := &domain.Jobsite{ID: uuid.New(), Name: "Depot", Lat: 55.75, Lng: 37.61, RadiusM: 500}
	faraway := &domain.Jobsite{ID: uuid.New(), Name: "Remote", Lat: 59.93, Lng: 30.31, RadiusM: 100}

	m.cache.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	m.jobsites.EXPECT().ListAll(gomock.Any()).Return([]*domain.Jobsite{inside, faraway}, nil)
	m.cache.EXPECT().SetAll(gomock.Any(), gomock.Any(), 5*time.Minute).Return(nil)

	resp, err := svc.CheckLocation(context.Background(), domain.GeofenceCheckRequest{
		WorkerID: uuid.New().String(),
		Lat:      55.75,
		Lng:      37.61,
	})
	if err != nil {
		t.Fatalf("CheckLocation: %v", err)
	}

	if len(resp.Jobsites) != 1 {
		t.Fatalf("expected exactly the containing jobsite, got %d", len(resp.Jobsites))
	}
	if resp.Jobsites[0].ID != inside.ID {
		t.Fatalf("expected jobsite %s, got %s", inside.ID, resp.Jobsites[0].ID)
	}
}

func TestCheckLocation_WarmCacheSkipsStorage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newIngestion(ctrl)

	cached := []domain.CachedJobsite{
		{ID: uuid.New(), Name: "Depot", Lat: 55.75, Lng: 37.61, RadiusM: 500},
	}
	m.cache.EXPECT().GetAll(gomock.Any()).Return(cached, nil)

	resp, err := svc.CheckLocation(context.Background(), domain.GeofenceCheckRequest{
		WorkerID: uuid.New().String(),
		Lat:      55.75,
		Lng:      37.61,
	})
	if err != nil {
		t.Fatalf("CheckLocation: %v", err)
	}
	if len(resp.Jobsites) != 1 {
		t.Fatalf("expected 1 jobsite from cache, got %d", len(resp.Jobsites))
	}
}

func TestCheckLocation_OutOfRangeCoords(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newIngestion(ctrl)

	_, err := svc.CheckLocation(context.Background(), domain.GeofenceCheckRequest{
		WorkerID: uuid.New().String(),
		Lat:      91,
		Lng:      0,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}
