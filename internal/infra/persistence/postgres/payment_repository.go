package postgres

import (
	"context"
	"time"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreateClientPayment persists money received from a client for a site.
func (repo *paymentRepository) CreateClientPayment(ctx context.Context, payment *entity.ClientPayment) error {
	paymentM := fromClientPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid site reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client payment")
	}

	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// CreateWorkerPayment persists money paid out to a worker.
func (repo *paymentRepository) CreateWorkerPayment(ctx context.Context, payment *entity.WorkerPayment) error {
	paymentM := fromWorkerPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid worker reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create worker payment")
	}

	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindClientPaymentsBySite retrieves a site's incoming payments, newest day first.
func (repo *paymentRepository) FindClientPaymentsBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.ClientPayment, error) {
	var paymentModels []*model.ClientPaymentModel

	if err := repo.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("day DESC, created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find client payments by site")
	}

	payments := make([]*entity.ClientPayment, 0, len(paymentModels))
	for _, m := range paymentModels {
		payments = append(payments, toClientPaymentDomain(m))
	}

	return payments, nil
}

// FindWorkerPaymentsByWorker retrieves payouts to one worker, newest day first.
func (repo *paymentRepository) FindWorkerPaymentsByWorker(ctx context.Context, workerID uuid.UUID) ([]*entity.WorkerPayment, error) {
	var paymentModels []*model.WorkerPaymentModel

	if err := repo.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("day DESC, created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find worker payments by worker")
	}

	payments := make([]*entity.WorkerPayment, 0, len(paymentModels))
	for _, m := range paymentModels {
		payments = append(payments, toWorkerPaymentDomain(m))
	}

	return payments, nil
}

// paymentFeedRow is the scan target of the unified feed query.
type paymentFeedRow struct {
	ID           uuid.UUID
	Direction    string
	RelatedID    uuid.UUID
	Counterparty string
	Amount       int64
	Mode         string
	Note         string
	Day          string
	CreatedAt    time.Time
}

// FindAll retrieves the unified feed of both ledgers, newest first, with
// counterparty names resolved from the site and worker tables.
func (repo *paymentRepository) FindAll(ctx context.Context, limit int) ([]*entity.PaymentRecord, error) {
	const feedQuery = `
		SELECT p.id, 'RECEIVED' AS direction, p.site_id AS related_id, s.client_name AS counterparty,
		       p.amount, p.mode, p.note, p.day, p.created_at
		FROM client_payments p
		JOIN sites s ON s.id = p.site_id
		UNION ALL
		SELECT p.id, 'PAID' AS direction, p.worker_id AS related_id, w.name AS counterparty,
		       p.amount, p.mode, p.note, p.day, p.created_at
		FROM worker_payments p
		JOIN workers w ON w.id = p.worker_id
		ORDER BY day DESC, created_at DESC
		LIMIT ?`

	var rows []paymentFeedRow
	if err := repo.db.WithContext(ctx).Raw(feedQuery, feedLimit(limit)).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query payment feed")
	}

	records := make([]*entity.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		record := &entity.PaymentRecord{
			ID:           row.ID,
			Direction:    entity.PaymentDirection(row.Direction),
			Counterparty: row.Counterparty,
			Amount:       entity.Money(row.Amount),
			Mode:         entity.PaymentMode(row.Mode),
			Note:         row.Note,
			Day:          entity.Day(row.Day),
			CreatedAt:    row.CreatedAt,
		}

		relatedID := row.RelatedID
		if record.Direction == entity.PaymentDirectionReceived {
			record.SiteID = &relatedID
		} else {
			record.WorkerID = &relatedID
		}

		records = append(records, record)
	}

	return records, nil
}

const defaultFeedLimit = 100

func feedLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}

	return limit
}

// SumClientPaymentsBySite totals money received for one site.
func (repo *paymentRepository) SumClientPaymentsBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientPaymentModel{}).
		Where("site_id = ?", siteID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum client payments by site")
	}

	return entity.Money(total), nil
}

// SumClientPayments totals money received across all sites.
func (repo *paymentRepository) SumClientPayments(ctx context.Context) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientPaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum client payments")
	}

	return entity.Money(total), nil
}

// SumWorkerPaymentsByWorker totals payouts to one worker.
func (repo *paymentRepository) SumWorkerPaymentsByWorker(ctx context.Context, workerID uuid.UUID) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WorkerPaymentModel{}).
		Where("worker_id = ?", workerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum worker payments by worker")
	}

	return entity.Money(total), nil
}

// SumWorkerPayments totals payouts across all workers.
func (repo *paymentRepository) SumWorkerPayments(ctx context.Context) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WorkerPaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum worker payments")
	}

	return entity.Money(total), nil
}

// --- Mapper Functions ---

func toClientPaymentDomain(data *model.ClientPaymentModel) *entity.ClientPayment {
	if data == nil {
		return nil
	}

	return &entity.ClientPayment{
		ID:        data.ID,
		SiteID:    data.SiteID,
		Amount:    entity.Money(data.Amount),
		Mode:      entity.PaymentMode(data.Mode),
		Note:      data.Note,
		Day:       entity.Day(data.Day),
		CreatedAt: data.CreatedAt,
	}
}

func fromClientPaymentDomain(data *entity.ClientPayment) *model.ClientPaymentModel {
	if data == nil {
		return nil
	}

	return &model.ClientPaymentModel{
		ID:        data.ID,
		SiteID:    data.SiteID,
		Amount:    data.Amount.Paise(),
		Mode:      string(data.Mode),
		Note:      data.Note,
		Day:       data.Day.String(),
		CreatedAt: data.CreatedAt,
	}
}

func toWorkerPaymentDomain(data *model.WorkerPaymentModel) *entity.WorkerPayment {
	if data == nil {
		return nil
	}

	return &entity.WorkerPayment{
		ID:        data.ID,
		WorkerID:  data.WorkerID,
		Amount:    entity.Money(data.Amount),
		Mode:      entity.PaymentMode(data.Mode),
		Note:      data.Note,
		Day:       entity.Day(data.Day),
		CreatedAt: data.CreatedAt,
	}
}

func fromWorkerPaymentDomain(data *entity.WorkerPayment) *model.WorkerPaymentModel {
	if data == nil {
		return nil
	}

	return &model.WorkerPaymentModel{
		ID:        data.ID,
		WorkerID:  data.WorkerID,
		Amount:    data.Amount.Paise(),
		Mode:      string(data.Mode),
		Note:      data.Note,
		Day:       data.Day.String(),
		CreatedAt: data.CreatedAt,
	}
}
