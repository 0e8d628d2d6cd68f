package impl

import (
	"context"
	"testing"
	"time"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/domain/service"
	mockRepo "sitekhata/internal/mocks/repository"
	mockSvc "sitekhata/internal/mocks/service"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authTestMocks struct {
	userRepo    *mockRepo.MockUserRepository
	authRepo    *mockRepo.MockAuthRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	workerRepo  *mockRepo.MockWorkerRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenSvc    *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *authTestMocks) {
	m := &authTestMocks{
		userRepo:    mockRepo.NewMockUserRepository(t),
		authRepo:    mockRepo.NewMockAuthRepository(t),
		refreshRepo: mockRepo.NewMockRefreshTokenRepository(t),
		workerRepo:  mockRepo.NewMockWorkerRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokenSvc:    mockSvc.NewMockTokenService(t),
	}

	txManager := &mockRepo.ImmediateTxManager{
		Users:         m.userRepo,
		Auths:         m.authRepo,
		RefreshTokens: m.refreshRepo,
		Workers:       m.workerRepo,
	}

	auth := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       m.hasher,
		TokenService: m.tokenSvc,
		Logger:       testLogger(),
	})

	return auth, m
}

func TestAuthService_RegisterContractor_Success(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()

	m.authRepo.On("FindAuthentication", ctx, "email", "owner@example.com").
		Return(nil, repository.ErrAuthNotFound)
	m.hasher.On("Hash", "secret-password").Return("hashed", nil)
	m.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleContractor && u.Email == "owner@example.com" && u.WorkerID == nil
	})).Return(nil)
	m.authRepo.On("CreateAuthentication", ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.Provider == entity.ProviderTypeEmail && a.PasswordHash == "hashed"
	})).Return(nil)

	out, err := auth.RegisterContractor(ctx, &usecase.RegisterContractorInput{
		Name:     "Sharma",
		Mobile:   "9876543210",
		Email:    "owner@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleContractor, out.User.Role)
}

func TestAuthService_RegisterContractor_DuplicateEmail(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()

	m.authRepo.On("FindAuthentication", ctx, "email", "owner@example.com").
		Return(&entity.Authentication{ID: uuid.New()}, nil)

	_, err := auth.RegisterContractor(ctx, &usecase.RegisterContractorInput{
		Name:     "Sharma",
		Email:    "owner@example.com",
		Password: "secret-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_RegisterContractor_MissingFields(t *testing.T) {
	auth, _ := createTestAuthService(t)

	_, err := auth.RegisterContractor(context.Background(), &usecase.RegisterContractorInput{
		Email: "owner@example.com",
	})

	assertErrorCode(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_ProvisionWorkerAccount_Success(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()
	workerID := uuid.New()

	m.workerRepo.On("FindByID", ctx, workerID).
		Return(&entity.Worker{ID: workerID, Name: "Ramesh", Mobile: "9876500000"}, nil)
	m.userRepo.On("FindByWorkerID", ctx, workerID).Return(nil, repository.ErrUserNotFound)
	m.authRepo.On("FindAuthentication", ctx, "email", "ramesh@example.com").
		Return(nil, repository.ErrAuthNotFound)
	m.hasher.On("Hash", "worker-password").Return("hashed", nil)
	m.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleWorker && u.WorkerID != nil && *u.WorkerID == workerID && u.Name == "Ramesh"
	})).Return(nil)
	m.authRepo.On("CreateAuthentication", ctx, mock.Anything).Return(nil)

	out, err := auth.ProvisionWorkerAccount(ctx, contractorActor(), &usecase.ProvisionWorkerAccountInput{
		WorkerID: workerID,
		Email:    "ramesh@example.com",
		Password: "worker-password",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, out.User.Role)
	require.NotNil(t, out.User.WorkerID)
	assert.Equal(t, workerID, *out.User.WorkerID)
}

func TestAuthService_ProvisionWorkerAccount_AlreadyLinked(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()
	workerID := uuid.New()

	m.workerRepo.On("FindByID", ctx, workerID).Return(&entity.Worker{ID: workerID}, nil)
	m.userRepo.On("FindByWorkerID", ctx, workerID).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := auth.ProvisionWorkerAccount(ctx, contractorActor(), &usecase.ProvisionWorkerAccountInput{
		WorkerID: workerID,
		Email:    "ramesh@example.com",
		Password: "worker-password",
	})

	assertErrorCode(t, err, domainerrors.ErrConflict)
}

func TestAuthService_ProvisionWorkerAccount_WorkerActorForbidden(t *testing.T) {
	auth, _ := createTestAuthService(t)

	_, err := auth.ProvisionWorkerAccount(context.Background(), workerActor(uuid.New()), &usecase.ProvisionWorkerAccountInput{
		WorkerID: uuid.New(),
		Email:    "ramesh@example.com",
		Password: "worker-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrContractorOnly)
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.authRepo.On("FindAuthentication", ctx, "email", "owner@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	m.hasher.On("Check", "secret-password", "stored-hash").Return(true)
	m.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleContractor}, nil)
	m.tokenSvc.On("GenerateTokens", userID, []string{"contractor"}).
		Return("access-token", "refresh-token", nil)
	m.tokenSvc.On("GetRefreshTokenDuration").Return(24 * time.Hour)
	m.refreshRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
		return rt.UserID == userID && rt.TokenHash == hashToken("refresh-token")
	})).Return(nil)

	out, err := auth.Login(ctx, &usecase.LoginInput{Email: "owner@example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()

	m.authRepo.On("FindAuthentication", ctx, "email", "owner@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "stored-hash"}, nil)
	m.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := auth.Login(ctx, &usecase.LoginInput{Email: "owner@example.com", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()

	m.authRepo.On("FindAuthentication", ctx, "email", "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := auth.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	oldHash := hashToken("old-refresh")

	m.tokenSvc.On("ValidateToken", "old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	m.refreshRepo.On("FindRefreshTokenByHash", ctx, oldHash).
		Return(&entity.RefreshToken{UserID: userID, TokenHash: oldHash, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	m.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleContractor}, nil)
	m.tokenSvc.On("GenerateTokens", userID, []string{"contractor"}).
		Return("new-access", "new-refresh", nil)
	m.tokenSvc.On("GetRefreshTokenDuration").Return(24 * time.Hour)
	m.refreshRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
		return rt.TokenHash == hashToken("new-refresh")
	})).Return(nil)
	m.refreshRepo.On("DeleteRefreshTokenByHash", ctx, oldHash).Return(nil)

	out, err := auth.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	oldHash := hashToken("old-refresh")

	m.tokenSvc.On("ValidateToken", "old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	m.refreshRepo.On("FindRefreshTokenByHash", ctx, oldHash).
		Return(&entity.RefreshToken{UserID: userID, TokenHash: oldHash, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

	_, err := auth.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()

	m.tokenSvc.On("ValidateToken", "refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	m.refreshRepo.On("DeleteRefreshTokenByHash", ctx, hashToken("refresh-token")).Return(nil)

	err := auth.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_RegisterDevice_StoresToken(t *testing.T) {
	auth, m := createTestAuthService(t)
	ctx := context.Background()
	actor := contractorActor()

	m.userRepo.On("UpdateDeviceToken", ctx, actor.UserID, "fcm-token").Return(nil)

	err := auth.RegisterDevice(ctx, actor, &usecase.RegisterDeviceInput{FCMToken: "fcm-token"})

	require.NoError(t, err)
}

func TestAuthService_RegisterDevice_EmptyToken(t *testing.T) {
	auth, _ := createTestAuthService(t)

	err := auth.RegisterDevice(context.Background(), contractorActor(), &usecase.RegisterDeviceInput{})

	assertErrorCode(t, err, domainerrors.ErrValidationFailed)
}
