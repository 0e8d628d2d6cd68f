// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterContractorInput defines the data required to register the contractor account.
type RegisterContractorInput struct {
	Name     string
	Mobile   string
	Email    string
	Password string
}

// ProvisionWorkerAccountInput links a login account to an existing worker so
// the worker can check their own attendance and dues.
type ProvisionWorkerAccountInput struct {
	WorkerID uuid.UUID
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// RegisterDeviceInput carries the FCM token of the caller's current device.
type RegisterDeviceInput struct {
	FCMToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterContractor(ctx context.Context, input *RegisterContractorInput) (*RegisterOutput, error)
	ProvisionWorkerAccount(ctx context.Context, actor entity.Actor, input *ProvisionWorkerAccountInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	RegisterDevice(ctx context.Context, actor entity.Actor, input *RegisterDeviceInput) error
}
