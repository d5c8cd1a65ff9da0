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

func TestEntryUpdate_ShiftingEndRecomputesDuration(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewEntryService(entries, newTestLogger())

	entryID := uuid.New()
	editor := uuid.New()
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	oldEnd := start.Add(8 * time.Hour)
	oldMinutes := 480
	newEnd := start.Add(9 * time.Hour)

	entries.EXPECT().Get(gomock.Any(), entryID).Return(&domain.TimeEntry{
		ID:              entryID,
		StartAt:         start,
		EndAt:           &oldEnd,
		DurationMinutes: &oldMinutes,
		Status:          domain.EntryPending,
	}, nil)
	entries.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.TimeEntry) error {
			if entry.DurationMinutes == nil || *entry.DurationMinutes != 540 {
				t.Fatalf("expected recomputed duration 540, got %v", entry.DurationMinutes)
			}
			if entry.ModifiedBy == nil || *entry.ModifiedBy != editor {
				t.Fatalf("expected modified_by stamp, got %v", entry.ModifiedBy)
			}
			return nil
		})

	got, err := svc.Update(context.Background(), entryID, domain.UpdateTimeEntryRequest{
		EndAt:      &newEnd,
		ModifiedBy: editor.String(),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 540 {
		t.Fatalf("expected 540 minutes, got %v", got.DurationMinutes)
	}
}

func TestEntryUpdate_StatusOnlyKeepsDuration(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewEntryService(entries, newTestLogger())

	entryID := uuid.New()
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	minutes := 480
	approved := domain.EntryApproved

	entries.EXPECT().Get(gomock.Any(), entryID).Return(&domain.TimeEntry{
		ID:              entryID,
		StartAt:         start,
		EndAt:           &end,
		DurationMinutes: &minutes,
		Status:          domain.EntryPending,
	}, nil)
	entries.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.TimeEntry) error {
			if entry.Status != domain.EntryApproved {
				t.Fatalf("expected APPROVED, got %s", entry.Status)
			}
			if entry.DurationMinutes == nil || *entry.DurationMinutes != 480 {
				t.Fatalf("status-only edit must not touch the duration, got %v", entry.DurationMinutes)
			}
			return nil
		})

	if _, err := svc.Update(context.Background(), entryID, domain.UpdateTimeEntryRequest{
		Status:     &approved,
		ModifiedBy: uuid.New().String(),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestEntryUpdate_InvalidModifiedBy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewEntryService(mock_service.NewMockEntryRepository(ctrl), newTestLogger())

	_, err := svc.Update(context.Background(), uuid.New(), domain.UpdateTimeEntryRequest{
		ModifiedBy: "whoever",
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestEntryApprove_PassesThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewEntryService(entries, newTestLogger())

	entryID := uuid.New()
	entries.EXPECT().Approve(gomock.Any(), entryID).Return(&domain.TimeEntry{ID: entryID, Status: domain.EntryApproved}, nil)

	got, err := svc.Approve(context.Background(), entryID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != domain.EntryApproved {
		t.Fatalf("expected APPROVED, got %s", got.Status)
	}
}
