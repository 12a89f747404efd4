package availability

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// SetAvailabilitySlots replaces every unbound slot of the doctor with a single
// AVAILABLE slot over [start, end). Slots that already carry an appointment stay.
func (s *Service) SetAvailabilitySlots(ctx context.Context, doctor *entity.User, start, end time.Time) (*entity.Availability, error) {
	if err := authz.Require(doctor, authz.ActionManageAvailability); err != nil {
		return nil, err
	}
	if err := entity.ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	var created *entity.Availability
	var removed int64

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		slots := s.uow.GetAvailabilityRepository(txCtx)

		existing, err := slots.ListByDoctor(txCtx, doctor.ID)
		if err != nil {
			return err
		}

		var unbound []string
		for _, slot := range existing {
			if !slot.IsBound() {
				unbound = append(unbound, slot.ID)
			}
		}
		if len(unbound) > 0 {
			if removed, err = slots.DeleteUnbound(txCtx, doctor.ID, unbound); err != nil {
				return err
			}
		}

		slot, err := entity.NewAvailability(doctor.ID, start, end, s.timeProvider)
		if err != nil {
			return err
		}
		if err := slots.Create(txCtx, slot); err != nil {
			return err
		}
		created = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Availability replaced", map[string]any{
		"doctor_id":     doctor.ID,
		"slot_id":       created.ID,
		"removed_slots": removed,
	})
	s.invalidate(ctx, authz.PathDoctorDashboard)

	return created, nil
}
