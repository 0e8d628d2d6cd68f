package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkerRole is the trade of a laborer.
type WorkerRole string

const (
	// WorkerRoleMistri is a skilled mason.
	WorkerRoleMistri WorkerRole = "MISTRI"
	// WorkerRoleHelper is an unskilled helper.
	WorkerRoleHelper WorkerRole = "HELPER"
)

// IsValid checks if the WorkerRole is a known value.
func (r WorkerRole) IsValid() bool {
	switch r {
	case WorkerRoleMistri, WorkerRoleHelper:
		return true
	default:
		return false
	}
}

// Worker is a daily laborer on the contractor's roll. DailyWage is the rate
// applied to future attendance only; past attendance keeps its own snapshot,
// so Worker is never the source of truth for historical pay.
type Worker struct {
	ID        uuid.UUID
	Name      string
	Role      WorkerRole
	DailyWage Money // Never negative.
	Mobile    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkerBalance is the derived settlement position of one worker.
// Balance > 0 means the contractor owes the worker.
type WorkerBalance struct {
	WorkerID    uuid.UUID `json:"workerId"`
	TotalEarned Money     `json:"totalEarned"`
	TotalPaid   Money     `json:"totalPaid"`
	Balance     Money     `json:"balance"`
}

// WorkerSummary is the worker-facing dashboard view: how much they worked,
// where, and what they have received so far.
type WorkerSummary struct {
	WorkerID      uuid.UUID           `json:"workerId"`
	DaysWorked    int64               `json:"daysWorked"`
	SitesWorked   int64               `json:"sitesWorked"`
	TotalReceived Money               `json:"totalReceived"`
	Balance       Money               `json:"balance"`
	RecentDays    []*AttendanceRecord `json:"recentDays"`
}
