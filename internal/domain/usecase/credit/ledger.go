package credit

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
)

// Ledger moves appointment credits between patient and doctor.
// It never opens its own unit of work: callers pass a transactional context.
type Ledger struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       FailurePolicy
}

// NewLedger creates a Ledger whose failures must be surfaced
func NewLedger(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Ledger {
	return &Ledger{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		policy:       MustSucceed,
	}
}

// SettleBooking debits the patient and credits the doctor the appointment cost
func (l *Ledger) SettleBooking(ctx context.Context, appointment *entity.Appointment) error {
	patient, err := l.uow.GetUserRepository(ctx).GetByID(ctx, appointment.PatientID)
	if err != nil {
		return l.policy.Handle(l.logger, "settle_booking", err, map[string]any{"appointment_id": appointment.ID})
	}
	if !patient.CanAfford(entity.AppointmentCost) {
		return errs.NewInsufficientCreditsError(patient.ID, entity.AppointmentCost, patient.Credits())
	}

	err = l.transfer(ctx, "settle_booking", appointment.PatientID, appointment.DoctorID, entity.AppointmentCost)
	return l.policy.Handle(l.logger, "settle_booking", err, map[string]any{"appointment_id": appointment.ID})
}

// SettleCancellation cancels the appointment and reverses the booking transfer:
// one status change, two ledger entries, two balance updates.
func (l *Ledger) SettleCancellation(ctx context.Context, appointment *entity.Appointment) error {
	if err := appointment.Cancel(l.timeProvider); err != nil {
		return err
	}

	if err := l.uow.GetAppointmentRepository(ctx).Update(ctx, appointment); err != nil {
		return l.policy.Handle(l.logger, "settle_cancellation", err, map[string]any{"appointment_id": appointment.ID})
	}

	err := l.transfer(ctx, "settle_cancellation", appointment.DoctorID, appointment.PatientID, entity.AppointmentCost)
	return l.policy.Handle(l.logger, "settle_cancellation", err, map[string]any{"appointment_id": appointment.ID})
}

// transfer credits toID first, then debits fromID, one ledger entry per leg
func (l *Ledger) transfer(ctx context.Context, operation, fromID, toID string, amount int64) error {
	ledger := l.uow.GetCreditTransactionRepository(ctx)
	users := l.uow.GetUserRepository(ctx)

	legs := []struct {
		userID string
		amount int64
	}{
		{userID: toID, amount: amount},
		{userID: fromID, amount: -amount},
	}

	for _, leg := range legs {
		entry, err := entity.NewAppointmentDeduction(leg.userID, leg.amount, l.timeProvider)
		if err != nil {
			return err
		}
		if err := ledger.Create(ctx, entry); err != nil {
			return errs.NewLedgerError(operation, leg.userID, leg.amount, err)
		}
		if _, err := users.AdjustCredits(ctx, leg.userID, leg.amount); err != nil {
			return errs.NewLedgerError(operation, leg.userID, leg.amount, err)
		}
	}

	l.logger.Debug("Credits transferred", map[string]any{
		"operation": operation,
		"from":      fromID,
		"to":        toID,
		"amount":    amount,
	})
	return nil
}
