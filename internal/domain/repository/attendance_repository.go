package repository

import (
	"context"
	"errors"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAttendanceNotFound is returned when no attendance record matches.
var ErrAttendanceNotFound = errors.New("attendance record not found")

// AttendanceRepository defines attendance persistence. The store enforces at
// most one record per (worker, day) pair; Upsert is the only write path.
type AttendanceRepository interface {
	// Upsert inserts the record, or replaces the existing one for the same
	// (worker, day) pair. Site, presence and wage snapshot are overwritten;
	// the stored record's ID is kept. Returns the canonical stored record.
	Upsert(ctx context.Context, record *entity.AttendanceRecord) (*entity.AttendanceRecord, error)

	// FindByWorkerAndDay retrieves the single record for a worker on a day.
	FindByWorkerAndDay(ctx context.Context, workerID uuid.UUID, day entity.Day) (*entity.AttendanceRecord, error)

	// FindBySiteAndDay retrieves all records booked at a site on a day.
	FindBySiteAndDay(ctx context.Context, siteID uuid.UUID, day entity.Day) ([]*entity.AttendanceRecord, error)

	// FindByWorker retrieves a worker's records, newest day first.
	FindByWorker(ctx context.Context, workerID uuid.UUID, limit int) ([]*entity.AttendanceRecord, error)

	// SumWagesByWorker sums wage snapshots of present days for one worker.
	SumWagesByWorker(ctx context.Context, workerID uuid.UUID) (entity.Money, error)

	// SumWagesBySite sums wage snapshots of present days booked at one site.
	SumWagesBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error)

	// CountPresentDaysBySite counts present-day records booked at one site.
	CountPresentDaysBySite(ctx context.Context, siteID uuid.UUID) (int64, error)

	// CountPresentDaysByWorker counts present-day records for one worker.
	CountPresentDaysByWorker(ctx context.Context, workerID uuid.UUID) (int64, error)

	// CountDistinctSitesByWorker counts the distinct sites a worker was
	// present at.
	CountDistinctSitesByWorker(ctx context.Context, workerID uuid.UUID) (int64, error)
}
