package postgres

import (
	"context"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// attendanceRepository implements the repository.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// Upsert inserts the record or replaces the existing one for the same
// (worker, day). The unique index on (worker_id, day) drives the conflict
// clause; the stored row keeps its original ID and created_at.
func (repo *attendanceRepository) Upsert(ctx context.Context, record *entity.AttendanceRecord) (*entity.AttendanceRecord, error) {
	recordM := fromAttendanceDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"site_id", "is_present", "wage_snapshot", "updated_at"}),
		}).
		Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid worker or site reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert attendance")
	}

	// Re-read the canonical row: on conflict the stored ID differs from the
	// one we just generated.
	return repo.FindByWorkerAndDay(ctx, record.WorkerID, record.Day)
}

// FindByWorkerAndDay retrieves the single record for a worker on a day.
func (repo *attendanceRepository) FindByWorkerAndDay(ctx context.Context, workerID uuid.UUID, day entity.Day) (*entity.AttendanceRecord, error) {
	var recordM model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Where("worker_id = ? AND day = ?", workerID, day.String()).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find attendance record")
	}

	return toAttendanceDomain(&recordM), nil
}

// FindBySiteAndDay retrieves all records booked at a site on a day.
func (repo *attendanceRepository) FindBySiteAndDay(ctx context.Context, siteID uuid.UUID, day entity.Day) ([]*entity.AttendanceRecord, error) {
	var recordModels []*model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Where("site_id = ? AND day = ?", siteID, day.String()).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find attendance by site and day")
	}

	return toAttendanceDomainSlice(recordModels), nil
}

// FindByWorker retrieves a worker's records, newest day first.
func (repo *attendanceRepository) FindByWorker(ctx context.Context, workerID uuid.UUID, limit int) ([]*entity.AttendanceRecord, error) {
	var recordModels []*model.AttendanceModel

	query := repo.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("day DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find attendance by worker")
	}

	return toAttendanceDomainSlice(recordModels), nil
}

// SumWagesByWorker sums wage snapshots of present days for one worker.
func (repo *attendanceRepository) SumWagesByWorker(ctx context.Context, workerID uuid.UUID) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("worker_id = ? AND is_present", workerID).
		Select("COALESCE(SUM(wage_snapshot), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum wages by worker")
	}

	return entity.Money(total), nil
}

// SumWagesBySite sums wage snapshots of present days booked at one site.
func (repo *attendanceRepository) SumWagesBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("site_id = ? AND is_present", siteID).
		Select("COALESCE(SUM(wage_snapshot), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum wages by site")
	}

	return entity.Money(total), nil
}

// CountPresentDaysBySite counts present-day records booked at one site.
func (repo *attendanceRepository) CountPresentDaysBySite(ctx context.Context, siteID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("site_id = ? AND is_present", siteID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count present days by site")
	}

	return count, nil
}

// CountPresentDaysByWorker counts present-day records for one worker.
func (repo *attendanceRepository) CountPresentDaysByWorker(ctx context.Context, workerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("worker_id = ? AND is_present", workerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count present days by worker")
	}

	return count, nil
}

// CountDistinctSitesByWorker counts the distinct sites a worker was present at.
func (repo *attendanceRepository) CountDistinctSitesByWorker(ctx context.Context, workerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("worker_id = ? AND is_present", workerID).
		Distinct("site_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count distinct sites by worker")
	}

	return count, nil
}

// --- Mapper Functions ---

func toAttendanceDomain(data *model.AttendanceModel) *entity.AttendanceRecord {
	if data == nil {
		return nil
	}

	return &entity.AttendanceRecord{
		ID:           data.ID,
		WorkerID:     data.WorkerID,
		SiteID:       data.SiteID,
		Day:          entity.Day(data.Day),
		IsPresent:    data.IsPresent,
		WageSnapshot: entity.Money(data.WageSnapshot),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toAttendanceDomainSlice(models []*model.AttendanceModel) []*entity.AttendanceRecord {
	records := make([]*entity.AttendanceRecord, 0, len(models))
	for _, m := range models {
		records = append(records, toAttendanceDomain(m))
	}

	return records
}

func fromAttendanceDomain(data *entity.AttendanceRecord) *model.AttendanceModel {
	if data == nil {
		return nil
	}

	return &model.AttendanceModel{
		ID:           data.ID,
		WorkerID:     data.WorkerID,
		Day:          data.Day.String(),
		SiteID:       data.SiteID,
		IsPresent:    data.IsPresent,
		WageSnapshot: data.WageSnapshot.Paise(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
