package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteModel mirrors the 'sites' table.
type SiteModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Name            string    `gorm:"type:varchar(200);not null"`
	ClientName      string    `gorm:"type:varchar(200);not null"`
	StartDate       string    `gorm:"type:date;not null"`
	ExpectedEndDate string    `gorm:"type:date;not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	EstimatedBudget int64     `gorm:"not null"` // paise
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteModel) TableName() string {
	return "sites"
}

// WorkerModel mirrors the 'workers' table.
type WorkerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Role      string    `gorm:"type:varchar(20);not null"`
	DailyWage int64     `gorm:"not null"` // paise
	Mobile    string    `gorm:"type:varchar(20);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkerModel) TableName() string {
	return "workers"
}

// AttendanceModel mirrors the 'attendance_records' table. The unique index on
// (worker_id, day) is what turns writes into upserts: one record per worker
// per day, whichever site it was booked at.
type AttendanceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	WorkerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_worker_day"`
	Day          string    `gorm:"type:date;not null;uniqueIndex:idx_attendance_worker_day"`
	SiteID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPresent    bool      `gorm:"not null"`
	WageSnapshot int64     `gorm:"not null"` // paise, immutable after write
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendance_records"
}

// MaterialExpenseModel mirrors the 'material_expenses' table. Append-only.
type MaterialExpenseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	SiteID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Quantity  string    `gorm:"type:varchar(100)"`
	Cost      int64     `gorm:"not null"` // paise
	Day       string    `gorm:"type:date;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaterialExpenseModel) TableName() string {
	return "material_expenses"
}

// ClientPaymentModel mirrors the 'client_payments' table. Append-only.
type ClientPaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	SiteID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    int64     `gorm:"not null"` // paise
	Mode      string    `gorm:"type:varchar(10);not null"`
	Note      string    `gorm:"type:text"`
	Day       string    `gorm:"type:date;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientPaymentModel) TableName() string {
	return "client_payments"
}

// WorkerPaymentModel mirrors the 'worker_payments' table. Append-only.
type WorkerPaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    int64     `gorm:"not null"` // paise
	Mode      string    `gorm:"type:varchar(10);not null"`
	Note      string    `gorm:"type:text"`
	Day       string    `gorm:"type:date;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkerPaymentModel) TableName() string {
	return "worker_payments"
}
