package appointment

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
)

// AddNotes replaces the doctor's notes on one of their appointments
func (s *Service) AddNotes(ctx context.Context, doctor *entity.User, appointmentID, text string) (*entity.Appointment, error) {
	if err := authz.Require(doctor, authz.ActionAnnotateAppointment); err != nil {
		return nil, err
	}
	if err := requireID(appointmentID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.NewValidationError("notes", "required")
	}

	var annotated *entity.Appointment
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		appointments := s.uow.GetAppointmentRepository(txCtx)

		appointment, err := appointments.GetByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			return err
		}
		if err := requireBoundDoctor(appointment, doctor); err != nil {
			return err
		}
		if err := appointment.SetNotes(text, s.timeProvider); err != nil {
			return err
		}
		if err := appointments.Update(txCtx, appointment); err != nil {
			return err
		}
		annotated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateFor(ctx, doctor.Role)
	return annotated, nil
}
