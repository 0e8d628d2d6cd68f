package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sitekhata/internal/delivery/context"
	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/domain/service"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ledgerService implements the LedgerUsecase interface. Every mutation runs
// inside one transaction so existence checks and writes see the same state.
type ledgerService struct {
	txManager      repository.TransactionManager
	siteRepo       repository.SiteRepository
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	expenseRepo    repository.ExpenseRepository
	paymentRepo    repository.PaymentRepository
	userRepo       repository.UserRepository
	publisher      service.EventPublisher
	notifier       service.NotificationService
	logger         *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SiteRepo       repository.SiteRepository
	WorkerRepo     repository.WorkerRepository
	AttendanceRepo repository.AttendanceRepository
	ExpenseRepo    repository.ExpenseRepository
	PaymentRepo    repository.PaymentRepository
	UserRepo       repository.UserRepository
	Publisher      service.EventPublisher
	Notifier       service.NotificationService
	Logger         *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:      params.TxManager,
		siteRepo:       params.SiteRepo,
		workerRepo:     params.WorkerRepo,
		attendanceRepo: params.AttendanceRepo,
		expenseRepo:    params.ExpenseRepo,
		paymentRepo:    params.PaymentRepo,
		userRepo:       params.UserRepo,
		publisher:      params.Publisher,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// requireSite rejects reads against a site id that does not exist.
func (s *ledgerService) requireSite(ctx context.Context, siteID uuid.UUID) error {
	if _, err := s.siteRepo.FindByID(ctx, siteID); err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return domainerrors.ErrSiteNotFound
		}

		return errors.Wrap(err, "failed to find site")
	}

	return nil
}

// requireWorker rejects reads against a worker id that does not exist.
func (s *ledgerService) requireWorker(ctx context.Context, workerID uuid.UUID) error {
	if _, err := s.workerRepo.FindByID(ctx, workerID); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return domainerrors.ErrWorkerNotFound
		}

		return errors.Wrap(err, "failed to find worker")
	}

	return nil
}

func (s *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// publish fans a ledger event out after a committed write. Publish failures
// are logged, never surfaced; the write already happened.
func (s *ledgerService) publish(ctx context.Context, event *service.LedgerEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish ledger event", slog.String("kind", event.Kind), slog.Any("error", err))
	}
}

// MarkAttendance upserts the record keyed on (worker, day). Re-marking the
// same worker and day at another site reassigns the day to that site.
func (s *ledgerService) MarkAttendance(ctx context.Context, actor entity.Actor, input *usecase.MarkAttendanceInput) (*entity.AttendanceRecord, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if _, err := entity.ParseDay(input.Day.String()); err != nil {
		return nil, domainerrors.ErrInvalidDay
	}

	var stored *entity.AttendanceRecord
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worker, err := repoFactory.NewWorkerRepository().FindByID(ctx, input.WorkerID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return domainerrors.ErrWorkerNotFound
			}

			return errors.Wrap(err, "failed to find worker")
		}

		if _, err := repoFactory.NewSiteRepository().FindByID(ctx, input.SiteID); err != nil {
			if errors.Is(err, repository.ErrSiteNotFound) {
				return domainerrors.ErrSiteNotFound
			}

			return errors.Wrap(err, "failed to find site")
		}

		now := time.Now()
		record := &entity.AttendanceRecord{
			ID:           uuid.New(),
			WorkerID:     input.WorkerID,
			SiteID:       input.SiteID,
			Day:          input.Day,
			IsPresent:    input.IsPresent,
			WageSnapshot: worker.DailyWage,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		stored, err = repoFactory.NewAttendanceRepository().Upsert(ctx, record)
		if err != nil {
			return errors.Wrap(err, "failed to upsert attendance")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Attendance marked",
		slog.Any("workerID", stored.WorkerID), slog.Any("siteID", stored.SiteID), slog.String("day", stored.Day.String()))
	s.publish(ctx, &service.LedgerEvent{
		Kind:        service.EventAttendanceRecorded,
		SiteID:      stored.SiteID.String(),
		WorkerID:    stored.WorkerID.String(),
		Day:         stored.Day.String(),
		AmountPaise: stored.WageSnapshot.Paise(),
	})

	return stored, nil
}

// ListSiteAttendance lists the records booked at a site on a day.
func (s *ledgerService) ListSiteAttendance(ctx context.Context, actor entity.Actor, siteID uuid.UUID, day entity.Day) ([]*entity.AttendanceRecord, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if err := s.requireSite(ctx, siteID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.FindBySiteAndDay(ctx, siteID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list site attendance")
	}

	return records, nil
}

// RecordExpense appends a material expense to a site's ledger.
func (s *ledgerService) RecordExpense(ctx context.Context, actor entity.Actor, input *usecase.RecordExpenseInput) (*entity.MaterialExpense, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("expense name is required")
	}
	if !input.Cost.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}
	if _, err := entity.ParseDay(input.Day.String()); err != nil {
		return nil, domainerrors.ErrInvalidDay
	}

	expense := &entity.MaterialExpense{
		ID:        uuid.New(),
		SiteID:    input.SiteID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		Cost:      input.Cost,
		Day:       input.Day,
		CreatedAt: time.Now(),
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewSiteRepository().FindByID(ctx, input.SiteID); err != nil {
			if errors.Is(err, repository.ErrSiteNotFound) {
				return domainerrors.ErrSiteNotFound
			}

			return errors.Wrap(err, "failed to find site")
		}

		if err := repoFactory.NewExpenseRepository().Create(ctx, expense); err != nil {
			return errors.Wrap(err, "failed to create expense")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Material expense recorded",
		slog.Any("siteID", expense.SiteID), slog.String("name", expense.Name), slog.String("cost", expense.Cost.String()))
	s.publish(ctx, &service.LedgerEvent{
		Kind:        service.EventExpenseRecorded,
		SiteID:      expense.SiteID.String(),
		Day:         expense.Day.String(),
		AmountPaise: expense.Cost.Paise(),
	})

	return expense, nil
}

// ListSiteExpenses lists a site's expenses, newest day first.
func (s *ledgerService) ListSiteExpenses(ctx context.Context, actor entity.Actor, siteID uuid.UUID) ([]*entity.MaterialExpense, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if err := s.requireSite(ctx, siteID); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.FindBySite(ctx, siteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list site expenses")
	}

	return expenses, nil
}

// RecordClientPayment appends money received from a client for a site.
func (s *ledgerService) RecordClientPayment(ctx context.Context, actor entity.Actor, input *usecase.RecordClientPaymentInput) (*entity.ClientPayment, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if err := validatePaymentFields(input.Amount, input.Mode, input.Day); err != nil {
		return nil, err
	}

	payment := &entity.ClientPayment{
		ID:        uuid.New(),
		SiteID:    input.SiteID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Note:      input.Note,
		Day:       input.Day,
		CreatedAt: time.Now(),
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewSiteRepository().FindByID(ctx, input.SiteID); err != nil {
			if errors.Is(err, repository.ErrSiteNotFound) {
				return domainerrors.ErrSiteNotFound
			}

			return errors.Wrap(err, "failed to find site")
		}

		if err := repoFactory.NewPaymentRepository().CreateClientPayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create client payment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Client payment recorded",
		slog.Any("siteID", payment.SiteID), slog.String("amount", payment.Amount.String()), slog.String("mode", string(payment.Mode)))
	s.publish(ctx, &service.LedgerEvent{
		Kind:        service.EventClientPaymentReceived,
		SiteID:      payment.SiteID.String(),
		Day:         payment.Day.String(),
		AmountPaise: payment.Amount.Paise(),
	})

	return payment, nil
}

// RecordWorkerPayment appends a wage payout to a worker.
func (s *ledgerService) RecordWorkerPayment(ctx context.Context, actor entity.Actor, input *usecase.RecordWorkerPaymentInput) (*entity.WorkerPayment, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if err := validatePaymentFields(input.Amount, input.Mode, input.Day); err != nil {
		return nil, err
	}

	payment := &entity.WorkerPayment{
		ID:        uuid.New(),
		WorkerID:  input.WorkerID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Note:      input.Note,
		Day:       input.Day,
		CreatedAt: time.Now(),
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewWorkerRepository().FindByID(ctx, input.WorkerID); err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return domainerrors.ErrWorkerNotFound
			}

			return errors.Wrap(err, "failed to find worker")
		}

		if err := repoFactory.NewPaymentRepository().CreateWorkerPayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create worker payment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Worker payment recorded",
		slog.Any("workerID", payment.WorkerID), slog.String("amount", payment.Amount.String()), slog.String("mode", string(payment.Mode)))
	s.publish(ctx, &service.LedgerEvent{
		Kind:        service.EventWorkerPaymentMade,
		WorkerID:    payment.WorkerID.String(),
		Day:         payment.Day.String(),
		AmountPaise: payment.Amount.Paise(),
	})
	s.notifyWorkerPaid(ctx, payment)

	return payment, nil
}

// notifyWorkerPaid pushes a settlement alert to the worker's registered
// device, if they have a login with a device token. Delivery failures are
// logged, never surfaced.
func (s *ledgerService) notifyWorkerPaid(ctx context.Context, payment *entity.WorkerPayment) {
	account, err := s.userRepo.FindByWorkerID(ctx, payment.WorkerID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.log(ctx).Warn("Failed to look up worker account for push", slog.Any("error", err))
		}

		return
	}
	if account.DeviceToken == "" {
		return
	}

	body := payment.Amount.String() + " paid via " + string(payment.Mode) + " on " + payment.Day.String()
	data := map[string]string{
		"payment_id": payment.ID.String(),
		"worker_id":  payment.WorkerID.String(),
	}
	if err := s.notifier.SendSingleNotification(ctx, account.DeviceToken, "Payment received", body, data); err != nil {
		s.log(ctx).Warn("Failed to push payment notification", slog.Any("workerID", payment.WorkerID), slog.Any("error", err))
	}
}

func validatePaymentFields(amount entity.Money, mode entity.PaymentMode, day entity.Day) error {
	if !amount.IsPositive() {
		return domainerrors.ErrInvalidAmount
	}
	if !mode.IsValid() {
		return domainerrors.ErrInvalidPaymentMode
	}
	if _, err := entity.ParseDay(day.String()); err != nil {
		return domainerrors.ErrInvalidDay
	}

	return nil
}

// ListPayments lists the unified feed of both ledgers, newest first.
func (s *ledgerService) ListPayments(ctx context.Context, actor entity.Actor, limit int) ([]*entity.PaymentRecord, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}

	records, err := s.paymentRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return records, nil
}

// ListSitePayments lists money received for one site, newest day first.
func (s *ledgerService) ListSitePayments(ctx context.Context, actor entity.Actor, siteID uuid.UUID) ([]*entity.ClientPayment, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if err := s.requireSite(ctx, siteID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindClientPaymentsBySite(ctx, siteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list site payments")
	}

	return payments, nil
}

// ListWorkerPayments lists payouts to one worker, newest day first.
func (s *ledgerService) ListWorkerPayments(ctx context.Context, actor entity.Actor, workerID uuid.UUID) ([]*entity.WorkerPayment, error) {
	if err := requireSelfOrContractor(actor, workerID); err != nil {
		return nil, err
	}
	if err := s.requireWorker(ctx, workerID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindWorkerPaymentsByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worker payments")
	}

	return payments, nil
}
