package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/google/uuid"
)

// CreditTransactionType classifies ledger entries
type CreditTransactionType string

// Ledger entry types
const (
	CreditPurchase       CreditTransactionType = "CREDIT_PURCHASE"
	AppointmentDeduction CreditTransactionType = "APPOINTMENT_DEDUCTION"
)

const billingPeriodLayout = "2006-01"

// CreditTransaction is an immutable ledger entry
type CreditTransaction struct {
	ID        string
	UserID    string
	Amount    int64 // signed
	Type      CreditTransactionType
	PackageID *string // plan that granted a CREDIT_PURCHASE
	CreatedAt time.Time
}

// NewCreditPurchase creates the monthly grant entry for a plan
func NewCreditPurchase(userID string, plan Plan, timeProvider coreport.TimeProvider) (*CreditTransaction, error) {
	if userID == "" {
		return nil, errs.NewValidationError("userId", "required")
	}
	if !plan.IsValid() {
		return nil, errs.NewValidationError("plan", "unknown plan "+plan.String())
	}

	packageID := plan.String()
	return &CreditTransaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    plan.MonthlyCredits(),
		Type:      CreditPurchase,
		PackageID: &packageID,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// NewAppointmentDeduction creates one leg of an appointment settlement
func NewAppointmentDeduction(userID string, amount int64, timeProvider coreport.TimeProvider) (*CreditTransaction, error) {
	if userID == "" {
		return nil, errs.NewValidationError("userId", "required")
	}
	if amount == 0 {
		return nil, errs.NewValidationError("amount", "must not be zero")
	}

	return &CreditTransaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Type:      AppointmentDeduction,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// BillingPeriod formats t as the year-month it falls in for the given location
func BillingPeriod(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(billingPeriodLayout)
}

// CoversPeriod reports whether this entry is a grant of plan in the billing period containing now
func (t *CreditTransaction) CoversPeriod(now time.Time, plan Plan, loc *time.Location) bool {
	if t.Type != CreditPurchase || t.PackageID == nil {
		return false
	}
	return *t.PackageID == plan.String() && BillingPeriod(t.CreatedAt, loc) == BillingPeriod(now, loc)
}
