package appointment

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// MarkCompleted closes a scheduled appointment once its end time has passed.
// Completion has no ledger effect.
func (s *Service) MarkCompleted(ctx context.Context, doctor *entity.User, appointmentID string) (*entity.Appointment, error) {
	if err := authz.Require(doctor, authz.ActionCompleteAppointment); err != nil {
		return nil, err
	}
	if err := requireID(appointmentID); err != nil {
		return nil, err
	}

	var completed *entity.Appointment
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		appointments := s.uow.GetAppointmentRepository(txCtx)

		appointment, err := appointments.GetByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			return err
		}
		if err := requireBoundDoctor(appointment, doctor); err != nil {
			return err
		}
		if err := appointment.Complete(s.timeProvider); err != nil {
			return err
		}
		if err := appointments.Update(txCtx, appointment); err != nil {
			return err
		}
		completed = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointment completed", map[string]any{
		"appointment_id": completed.ID,
		"doctor_id":      doctor.ID,
	})
	s.invalidateFor(ctx, doctor.Role)

	return completed, nil
}
