package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// AllocationResult reports the outcome of a monthly credit allocation
type AllocationResult struct {
	User    *entity.User
	Granted bool
	Plan    entity.Plan
	Amount  int64
}

// CreditUseCase defines caller-facing ledger operations
type CreditUseCase interface {
	// AllocateMonthlyCredits grants the plan allowance at most once per billing period.
	// With the default policy failures are logged and reported as an unchanged result.
	AllocateMonthlyCredits(ctx context.Context, principal *entity.Principal) (*AllocationResult, error)

	// History lists the user's ledger entries, newest first
	History(ctx context.Context, user *entity.User, limit int) ([]*entity.CreditTransaction, error)
}

// CreditLedger moves appointment credits between patient and doctor.
// Both methods must be called inside the caller's unit of work.
type CreditLedger interface {
	// SettleBooking debits the patient and credits the doctor
	SettleBooking(ctx context.Context, appointment *entity.Appointment) error

	// SettleCancellation cancels the appointment, credits the patient and debits the doctor
	SettleCancellation(ctx context.Context, appointment *entity.Appointment) error
}
