package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside one transaction: commit when fn returns nil,
	// roll back on error or panic. Repositories obtained from the context
	// passed to fn are bound to the transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction, if any
	GetUserRepository(ctx context.Context) UserRepository

	// GetCreditTransactionRepository returns a ledger repository bound to the current transaction, if any
	GetCreditTransactionRepository(ctx context.Context) CreditTransactionRepository

	// GetAvailabilityRepository returns a slot repository bound to the current transaction, if any
	GetAvailabilityRepository(ctx context.Context) AvailabilityRepository

	// GetAppointmentRepository returns an appointment repository bound to the current transaction, if any
	GetAppointmentRepository(ctx context.Context) AppointmentRepository
}
