package repository

import (
	"context"

	domainrepo "sitekhata/internal/domain/repository"
)

// ImmediateTxManager satisfies repository.TransactionManager for tests by
// running the callback inline against a fixed repository set. There is no
// transaction; writes hit the mocks directly.
type ImmediateTxManager struct {
	Users         domainrepo.UserRepository
	Auths         domainrepo.AuthRepository
	RefreshTokens domainrepo.RefreshTokenRepository
	Sites         domainrepo.SiteRepository
	Workers       domainrepo.WorkerRepository
	Attendance    domainrepo.AttendanceRepository
	Expenses      domainrepo.ExpenseRepository
	Payments      domainrepo.PaymentRepository
}

func (m *ImmediateTxManager) Execute(_ context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	return fn(m)
}

func (m *ImmediateTxManager) NewUserRepository() domainrepo.UserRepository { return m.Users }

func (m *ImmediateTxManager) NewAuthRepository() domainrepo.AuthRepository { return m.Auths }

func (m *ImmediateTxManager) NewRefreshTokenRepository() domainrepo.RefreshTokenRepository {
	return m.RefreshTokens
}

func (m *ImmediateTxManager) NewSiteRepository() domainrepo.SiteRepository { return m.Sites }

func (m *ImmediateTxManager) NewWorkerRepository() domainrepo.WorkerRepository { return m.Workers }

func (m *ImmediateTxManager) NewAttendanceRepository() domainrepo.AttendanceRepository {
	return m.Attendance
}

func (m *ImmediateTxManager) NewExpenseRepository() domainrepo.ExpenseRepository { return m.Expenses }

func (m *ImmediateTxManager) NewPaymentRepository() domainrepo.PaymentRepository { return m.Payments }
