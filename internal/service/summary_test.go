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

func TestSplitOvertime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		total        int
		wantRegular  int
		wantOvertime int
	}{
		{"zero", 0, 0, 0},
		{"under_threshold", 1200, 1200, 0},
		{"exactly_threshold", 2400, 2400, 0},
		{"one_over", 2401, 2400, 1},
		{"hundred_over", 2500, 2400, 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			regular, overtime := domain.SplitOvertime(tt.total)
			if regular != tt.wantRegular || overtime != tt.wantOvertime {
				t.Fatalf("SplitOvertime(%d) = (%d, %d), want (%d, %d)",
					tt.total, regular, overtime, tt.wantRegular, tt.wantOvertime)
			}
		})
	}
}

func TestCalculate_NormalizesWeekAndSplits(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := mock_service.NewMockSummaryRepository(ctrl)
	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewSummaryService(summaries, entries, newTestLogger())

	workerID := uuid.New()
	// a Wednesday afternoon; the summary keys on the containing Monday
	midWeek := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)
	wantStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)

	entries.EXPECT().
		SumApprovedMinutes(gomock.Any(), workerID, wantStart, wantEnd).
		Return(2500, nil)
	summaries.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.WeeklySummary) error {
			if !s.WeekStart.Equal(wantStart) {
				t.Fatalf("expected week_start %v, got %v", wantStart, s.WeekStart)
			}
			if s.TotalRegular != 2400 || s.TotalOvertime != 100 {
				t.Fatalf("expected 2400/100 split, got %d/%d", s.TotalRegular, s.TotalOvertime)
			}
			if s.ApprovalState != domain.ApprovalPending {
				t.Fatalf("expected PENDING, got %s", s.ApprovalState)
			}
			return nil
		})

	summary, err := svc.Calculate(context.Background(), domain.CalculateSummaryRequest{
		WorkerID:  workerID.String(),
		WeekStart: midWeek,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if summary.TotalRegular != 2400 || summary.TotalOvertime != 100 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
}

func TestCalculate_EmptyWeekWritesZeros(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := mock_service.NewMockSummaryRepository(ctrl)
	entries := mock_service.NewMockEntryRepository(ctrl)
	svc := service.NewSummaryService(summaries, entries, newTestLogger())

	workerID := uuid.New()

	entries.EXPECT().
		SumApprovedMinutes(gomock.Any(), workerID, gomock.Any(), gomock.Any()).
		Return(0, nil)
	summaries.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.WeeklySummary) error {
			if s.TotalRegular != 0 || s.TotalOvertime != 0 {
				t.Fatalf("expected zero totals, got %d/%d", s.TotalRegular, s.TotalOvertime)
			}
			return nil
		})

	if _, err := svc.Calculate(context.Background(), domain.CalculateSummaryRequest{
		WorkerID:  workerID.String(),
		WeekStart: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
}

func TestCalculate_InvalidWorkerID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSummaryService(
		mock_service.NewMockSummaryRepository(ctrl),
		mock_service.NewMockEntryRepository(ctrl),
		newTestLogger(),
	)

	_, err := svc.Calculate(context.Background(), domain.CalculateSummaryRequest{
		WorkerID:  "nope",
		WeekStart: time.Now().UTC(),
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestSummaryApprove_SetsApproved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := mock_service.NewMockSummaryRepository(ctrl)
	svc := service.NewSummaryService(summaries, mock_service.NewMockEntryRepository(ctrl), newTestLogger())

	id := uuid.New()
	summaries.EXPECT().SetApproval(gomock.Any(), id, domain.ApprovalApproved).Return(nil)

	if err := svc.Approve(context.Background(), id); err != nil {
		t.Fatalf("Approve: %v", err)
	}
}
