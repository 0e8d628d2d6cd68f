package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord marks one worker on one day. A worker has at most one
// record per day across all sites; recording again for the same (worker, day)
// replaces the earlier mark, site included.
//
// WageSnapshot is captured from the worker's rate at recording time and never
// recomputed afterward. Changing a worker's daily wage has no effect on
// records that already exist.
type AttendanceRecord struct {
	ID           uuid.UUID
	WorkerID     uuid.UUID
	SiteID       uuid.UUID
	Day          Day
	IsPresent    bool
	WageSnapshot Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EarnedWage is the wage this record contributes to the worker's balance.
// Absent days contribute nothing, whatever the snapshot says.
func (a *AttendanceRecord) EarnedWage() Money {
	if !a.IsPresent {
		return 0
	}
	return a.WageSnapshot
}
