package postgres

import (
	"context"
	"testing"
	"time"

	"sitekhata/internal/domain/entity"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newAttendanceTestRepo drives the real upsert SQL against an in-memory
// database so the (worker, day) conflict clause is exercised, not mocked.
func newAttendanceTestRepo(t *testing.T) (repository.AttendanceRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each connection to :memory: gets its own database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.AttendanceModel{}))

	return NewAttendanceRepository(db), db
}

func attendanceRecord(workerID, siteID uuid.UUID, day string, wage entity.Money) *entity.AttendanceRecord {
	now := time.Now()

	return &entity.AttendanceRecord{
		ID:           uuid.New(),
		WorkerID:     workerID,
		SiteID:       siteID,
		Day:          entity.Day(day),
		IsPresent:    true,
		WageSnapshot: wage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func countAttendanceRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&count).Error)

	return count
}

func TestAttendanceRepository_Upsert_ReassignsDayAcrossSites(t *testing.T) {
	repo, db := newAttendanceTestRepo(t)
	ctx := context.Background()
	workerID := uuid.New()
	siteA := uuid.New()
	siteB := uuid.New()

	first, err := repo.Upsert(ctx, attendanceRecord(workerID, siteA, "2025-01-10", entity.RupeesToMoney(600)))
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, attendanceRecord(workerID, siteB, "2025-01-10", entity.RupeesToMoney(700)))
	require.NoError(t, err)

	assert.Equal(t, int64(1), countAttendanceRows(t, db))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, siteB, second.SiteID)
	assert.Equal(t, entity.RupeesToMoney(700), second.WageSnapshot)

	stored, err := repo.FindByWorkerAndDay(ctx, workerID, entity.Day("2025-01-10"))
	require.NoError(t, err)
	assert.Equal(t, siteB, stored.SiteID)

	// The day's labor cost moves with the reassignment.
	atA, err := repo.SumWagesBySite(ctx, siteA)
	require.NoError(t, err)
	assert.Equal(t, entity.Money(0), atA)

	atB, err := repo.SumWagesBySite(ctx, siteB)
	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(700), atB)
}

func TestAttendanceRepository_Upsert_PreservesCreatedAt(t *testing.T) {
	repo, _ := newAttendanceTestRepo(t)
	ctx := context.Background()
	workerID := uuid.New()
	siteID := uuid.New()

	original := attendanceRecord(workerID, siteID, "2025-01-10", entity.RupeesToMoney(600))
	original.CreatedAt = time.Now().Add(-time.Hour)
	original.UpdatedAt = original.CreatedAt

	_, err := repo.Upsert(ctx, original)
	require.NoError(t, err)

	replacement := attendanceRecord(workerID, siteID, "2025-01-10", entity.RupeesToMoney(650))
	stored, err := repo.Upsert(ctx, replacement)
	require.NoError(t, err)

	assert.WithinDuration(t, original.CreatedAt, stored.CreatedAt, time.Second)
	assert.WithinDuration(t, replacement.UpdatedAt, stored.UpdatedAt, time.Second)
}

func TestAttendanceRepository_Upsert_DistinctDaysAccumulate(t *testing.T) {
	repo, db := newAttendanceTestRepo(t)
	ctx := context.Background()
	workerID := uuid.New()
	siteID := uuid.New()

	for _, day := range []string{"2025-01-10", "2025-01-11"} {
		_, err := repo.Upsert(ctx, attendanceRecord(workerID, siteID, day, entity.RupeesToMoney(600)))
		require.NoError(t, err)
	}

	absent := attendanceRecord(workerID, siteID, "2025-01-12", entity.RupeesToMoney(600))
	absent.IsPresent = false
	_, err := repo.Upsert(ctx, absent)
	require.NoError(t, err)

	assert.Equal(t, int64(3), countAttendanceRows(t, db))

	// Absent days keep their snapshot but earn nothing.
	total, err := repo.SumWagesByWorker(ctx, workerID)
	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(1200), total)

	presentDays, err := repo.CountPresentDaysByWorker(ctx, workerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), presentDays)
}

func TestAttendanceRepository_FindByWorkerAndDay_NotFound(t *testing.T) {
	repo, _ := newAttendanceTestRepo(t)

	_, err := repo.FindByWorkerAndDay(context.Background(), uuid.New(), entity.Day("2025-01-10"))

	require.ErrorIs(t, err, repository.ErrAttendanceNotFound)
}
