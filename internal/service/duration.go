package service

import (
	"math"
	"time"
)

// DurationMinutes returns floor((end - start) in ms / 60000). 90 seconds is
// 1 minute, never rounded up; an end before start floors downward, so -90
// seconds is -2. Inverted ranges are accepted as-is.
func DurationMinutes(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	return int(math.Floor(float64(ms) / 60000.0))
}
