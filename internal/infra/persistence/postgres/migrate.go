package postgres

import (
	"sitekhata/internal/errors"
	"sitekhata/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate applies the schema for every ledger table. AutoMigrate is additive
// only; it never drops columns or data.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.SiteModel{},
		&model.WorkerModel{},
		&model.AttendanceModel{},
		&model.MaterialExpenseModel{},
		&model.ClientPaymentModel{},
		&model.WorkerPaymentModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}
