// Package calendar holds the week-boundary arithmetic used by payroll
// aggregation. Weeks run Monday 00:00:00.000 UTC through Sunday
// 23:59:59.999 UTC, independent of locale.
package calendar

import "time"

// StartOfWeek normalizes t to the Monday 00:00:00.000 UTC of its week.
// Sunday belongs to the week that started the previous Monday.
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	daysBack := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysBack)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekEnd returns the inclusive end of the week starting at weekStart:
// Sunday 23:59:59.999.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
}
