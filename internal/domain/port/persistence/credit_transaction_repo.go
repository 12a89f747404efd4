package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// CreditTransactionRepository is the append-only ledger store
type CreditTransactionRepository interface {
	// Create appends a ledger entry
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrPersistence: If the database fails
	Create(ctx context.Context, tx *entity.CreditTransaction) error

	// LatestPurchase returns the user's most recent CREDIT_PURCHASE entry,
	// or nil with no error when the user has never been granted credits
	LatestPurchase(ctx context.Context, userID string) (*entity.CreditTransaction, error)

	// ListByUser returns the user's entries, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditTransaction, error)

	// SumByUser returns the sum of all the user's entry amounts
	SumByUser(ctx context.Context, userID string) (int64, error)
}
