package calendar

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	t.Parallel()

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday_midnight", monday, monday},
		{"monday_noon", time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC), monday},
		{"wednesday", time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), monday},
		{"saturday", time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC), monday},
		{"sunday_belongs_to_previous_monday", time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC), monday},
		{"next_monday_starts_new_week", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"year_boundary", time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := StartOfWeek(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("StartOfWeek(%v)=%v want=%v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStartOfWeek_NonUTCInput(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:00 Monday local time is 21:00 Sunday UTC, so the UTC week started
	// the previous Monday.
	in := time.Date(2025, 6, 9, 2, 0, 0, 0, loc)
	want := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	if got := StartOfWeek(in); !got.Equal(want) {
		t.Fatalf("StartOfWeek(%v)=%v want=%v", in, got, want)
	}
}

func TestWeekEnd(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, 6, 8, 23, 59, 59, 999000000, time.UTC)

	if got := WeekEnd(start); !got.Equal(want) {
		t.Fatalf("WeekEnd(%v)=%v want=%v", start, got, want)
	}
}
