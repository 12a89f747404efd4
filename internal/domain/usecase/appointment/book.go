package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
)

// BookAppointment reserves an open slot with a verified doctor and pays for it.
// Appointment creation, slot binding and the credit transfer share one unit of work.
func (s *Service) BookAppointment(ctx context.Context, patient *entity.User, slotID, description string) (*entity.Appointment, error) {
	if err := authz.Require(patient, authz.ActionBookAppointment); err != nil {
		return nil, err
	}
	if strings.TrimSpace(slotID) == "" {
		return nil, errs.NewValidationError("slotId", "required")
	}

	var booked *entity.Appointment
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		slots := s.uow.GetAvailabilityRepository(txCtx)

		slot, err := slots.GetByIDForUpdate(txCtx, slotID)
		if err != nil {
			return err
		}
		if slot.Status != entity.SlotAvailable || slot.IsBound() {
			return errs.NewStateTransitionError("availability", slot.ID, string(slot.Status), string(entity.SlotBooked))
		}

		doctor, err := s.uow.GetUserRepository(txCtx).GetByID(txCtx, slot.DoctorID)
		if err != nil {
			return err
		}
		if !doctor.IsVerifiedDoctor() {
			return fmt.Errorf("%w: doctor %s is not verified", errs.ErrForbidden, doctor.ID)
		}

		appointment, err := entity.NewAppointment(patient.ID, slot, description, s.timeProvider)
		if err != nil {
			return err
		}
		if err := s.uow.GetAppointmentRepository(txCtx).Create(txCtx, appointment); err != nil {
			return err
		}

		if err := slot.Bind(appointment.ID, s.timeProvider); err != nil {
			return err
		}
		if err := slots.Update(txCtx, slot); err != nil {
			return err
		}

		if err := s.ledger.SettleBooking(txCtx, appointment); err != nil {
			return err
		}

		booked = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointment booked", map[string]any{
		"appointment_id": booked.ID,
		"patient_id":     booked.PatientID,
		"doctor_id":      booked.DoctorID,
		"slot_id":        slotID,
	})
	s.invalidateFor(ctx, patient.Role)

	return booked, nil
}
