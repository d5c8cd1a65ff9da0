package domain

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalState string

const (
	ApprovalPending  ApprovalState = "PENDING"
	ApprovalApproved ApprovalState = "APPROVED"
)

// OvertimeThresholdMinutes is the fixed 40h weekly boundary between
// regular and overtime minutes.
const OvertimeThresholdMinutes = 40 * 60

// WeeklySummary holds the aggregated minutes for one worker and one
// calendar week. Unique per (worker, week_start); recomputation overwrites
// totals and resets the approval state.
type WeeklySummary struct {
	ID            uuid.UUID     `json:"id"`
	WorkerID      uuid.UUID     `json:"worker_id"`
	WeekStart     time.Time     `json:"week_start"`
	TotalRegular  int           `json:"total_regular"`
	TotalOvertime int           `json:"total_overtime"`
	ApprovalState ApprovalState `json:"approval_state"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SplitOvertime divides a weekly minute total at the overtime threshold.
func SplitOvertime(totalMinutes int) (regular, overtime int) {
	regular = totalMinutes
	if regular > OvertimeThresholdMinutes {
		regular = OvertimeThresholdMinutes
	}
	overtime = totalMinutes - OvertimeThresholdMinutes
	if overtime < 0 {
		overtime = 0
	}
	return regular, overtime
}
