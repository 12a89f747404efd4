package appointment

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
)

// CancelAppointment cancels a scheduled appointment on behalf of either participant
// and refunds the patient. The slot keeps its binding.
func (s *Service) CancelAppointment(ctx context.Context, actor *entity.User, appointmentID string) (*entity.Appointment, error) {
	if err := authz.Require(actor, authz.ActionCancelAppointment); err != nil {
		return nil, err
	}
	if err := requireID(appointmentID); err != nil {
		return nil, err
	}

	appointment, err := s.uow.GetAppointmentRepository(ctx).GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.IsParticipant(actor.ID) {
		return nil, fmt.Errorf("%w: not a participant of appointment %s", errs.ErrForbidden, appointmentID)
	}

	var cancelled *entity.Appointment
	err = s.uow.Do(ctx, func(txCtx context.Context) error {
		// Re-read under lock: a concurrent cancel or completion must see our write or we theirs
		locked, err := s.uow.GetAppointmentRepository(txCtx).GetByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			return err
		}
		if locked.Status != entity.AppointmentScheduled {
			return errs.NewStateTransitionError("appointment", locked.ID, string(locked.Status), string(entity.AppointmentCancelled))
		}

		if err := s.ledger.SettleCancellation(txCtx, locked); err != nil {
			return err
		}
		cancelled = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointment cancelled", map[string]any{
		"appointment_id": cancelled.ID,
		"actor_id":       actor.ID,
		"actor_role":     string(actor.Role),
	})
	s.invalidateFor(ctx, actor.Role)

	return cancelled, nil
}
