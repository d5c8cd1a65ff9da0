package service_test

import (
	"testing"
	"time"

	"github.com/ryobiguy/timesheet/internal/service"
)

func TestDurationMinutes(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"exact_hour", base.Add(1 * time.Hour), 60},
		{"ninety_seconds_floors_to_one", base.Add(90 * time.Second), 1},
		{"fifty_nine_seconds_is_zero", base.Add(59 * time.Second), 0},
		{"zero_span", base, 0},
		{"negative_ninety_seconds_floors_down", base.Add(-90 * time.Second), -2},
		{"negative_exact_minute", base.Add(-1 * time.Minute), -1},
		{"sub_minute_millis", base.Add(59*time.Second + 999*time.Millisecond), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := service.DurationMinutes(base, tt.end); got != tt.want {
				t.Fatalf("DurationMinutes(%v, %v) = %d, want %d", base, tt.end, got, tt.want)
			}
		})
	}
}
