package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a login account. Contractors own the ledger; worker accounts are
// provisioned by a contractor and linked to an existing Worker record.
type User struct {
	ID          uuid.UUID  // Unique identifier for the account.
	Name        string     // Display name.
	Mobile      string     // Contact number, the primary identifier in the field.
	Email       string     // Login identifier.
	Role        Role       // contractor or worker.
	WorkerID    *uuid.UUID // Set only for worker accounts: the Worker this login belongs to.
	DeviceToken string     // FCM token of the last registered device, empty if none.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Authentication stores one credential for a user. Kept separate from User so
// additional providers can attach to the same account later.
type Authentication struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Provider     ProviderType
	ProviderID   string // For email provider this is the email address.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProviderType identifies how a credential authenticates.
type ProviderType string

// ProviderTypeEmail is the email+password credential provider.
const ProviderTypeEmail ProviderType = "email"

// RefreshToken is a stored session: the hash of an issued refresh token and
// when it stops being honored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Actor is the authenticated caller of a ledger operation, as established by
// the delivery layer from token claims. Every mutation checks it once at the
// engine boundary instead of scattering role branches through callers.
type Actor struct {
	UserID   uuid.UUID
	Role     Role
	WorkerID *uuid.UUID
}
