package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// UserRepository defines methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrPersistence: If the database fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByExternalID retrieves a user by the identity provider subject
	//
	// Possible errors:
	// - ErrUserNotFound: If no user is linked to the subject
	// - ErrPersistence: If the database fails
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// Create stores a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the ID or external ID is already taken
	// - ErrPersistence: If the database fails
	Create(ctx context.Context, user *entity.User) error

	// Update stores profile, role, doctor and plan fields.
	// The credit balance is never written here; use AdjustCredits.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrPersistence: If the database fails
	Update(ctx context.Context, user *entity.User) error

	// AdjustCredits adds delta to the stored balance in a single statement and
	// returns the user as stored afterwards. Must run in the same unit of work
	// as the ledger entry that justifies the change.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrPersistence: If the database fails
	AdjustCredits(ctx context.Context, userID string, delta int64) (*entity.User, error)

	// ListDoctorsByVerification lists doctors in the given verification status, oldest first
	ListDoctorsByVerification(ctx context.Context, status entity.VerificationStatus) ([]*entity.User, error)
}
