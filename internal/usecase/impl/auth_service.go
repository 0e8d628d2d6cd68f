package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken derives the storable lookup key of a refresh token.
func hashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))

	return hex.EncodeToString(hasher.Sum(nil))
}

// RegisterContractor creates the business-owner account with an email credential.
func (srv *authService) RegisterContractor(ctx context.Context, input *usecase.RegisterContractorInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting contractor registration", slog.String("email", input.Email))

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	}

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := authRepo.FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		now := time.Now()
		newUser := &entity.User{
			ID:        uuid.New(),
			Name:      input.Name,
			Mobile:    input.Mobile,
			Email:     input.Email,
			Role:      entity.RoleContractor,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			ID:           uuid.New(),
			UserID:       newUser.ID,
			Provider:     entity.ProviderTypeEmail,
			ProviderID:   input.Email,
			PasswordHash: hashedPassword,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Contractor registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Contractor registered", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// ProvisionWorkerAccount links a login account to an existing worker so the
// worker can check their own attendance and dues. Contractor only.
func (srv *authService) ProvisionWorkerAccount(ctx context.Context, actor entity.Actor, input *usecase.ProvisionWorkerAccountInput) (*usecase.RegisterOutput, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()
		workerRepo := repoFactory.NewWorkerRepository()

		worker, err := workerRepo.FindByID(ctx, input.WorkerID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return domainerrors.ErrWorkerNotFound
			}

			return errors.Wrap(err, "failed to find worker")
		}

		if _, err := userRepo.FindByWorkerID(ctx, worker.ID); err == nil {
			return domainerrors.ErrConflict.WithDetails("worker already has a login account")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check worker account")
		}

		if _, err := authRepo.FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		now := time.Now()
		workerID := worker.ID
		newUser := &entity.User{
			ID:        uuid.New(),
			Name:      worker.Name,
			Mobile:    worker.Mobile,
			Email:     input.Email,
			Role:      entity.RoleWorker,
			WorkerID:  &workerID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create worker account")
		}

		newAuth := &entity.Authentication{
			ID:           uuid.New(),
			UserID:       newUser.ID,
			Provider:     entity.ProviderTypeEmail,
			ProviderID:   input.Email,
			PasswordHash: hashedPassword,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create worker authentication")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Worker account provisioning failed", slog.Any("workerID", input.WorkerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Worker account provisioned", slog.Any("userID", registeredUser.ID), slog.Any("workerID", input.WorkerID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login checks the credential and issues a fresh token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	// Login involves multiple steps, so we use a transaction to ensure atomicity,
	// especially for creating the new refresh token.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		authRecord, err := authRepo.FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email)
		if err != nil {
			// This includes ErrAuthNotFound, which we treat as an invalid credential case.
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
			CreatedAt: time.Now(),
		}

		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// Refresh rotates a refresh token: the presented token is retired and a new
// pair is issued.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var user *entity.User
	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		oldHash := hashToken(input.RefreshToken)
		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, oldHash)
		if err != nil {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
		}
		if stored.ExpiresAt.Before(time.Now()) {
			return domainerrors.ErrRefreshTokenExpired
		}

		user, err = userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashToken(newRefreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
			CreatedAt: time.Now(),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, oldHash); err != nil {
			// Log the error but don't fail the transaction; the user already holds a new valid token.
			srv.log(ctx).Warn("Failed to delete old refresh token", slog.Any("error", err))
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
		User:         user,
	}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, hashToken(input.RefreshToken)); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Logged out")

	return nil
}

// RegisterDevice stores the FCM token of the caller's current device so the
// ledger can push wage settlement alerts to it.
func (srv *authService) RegisterDevice(ctx context.Context, actor entity.Actor, input *usecase.RegisterDeviceInput) error {
	if input.FCMToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm token is required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		if err := userRepo.UpdateDeviceToken(ctx, actor.UserID, input.FCMToken); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to store device token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Device registration failed", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Device registered", slog.Any("userID", actor.UserID))

	return nil
}
