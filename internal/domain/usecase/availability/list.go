package availability

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
)

// ListAvailability returns all of the doctor's slots ordered by start time
func (s *Service) ListAvailability(ctx context.Context, doctor *entity.User) ([]*entity.Availability, error) {
	if err := authz.Require(doctor, authz.ActionManageAvailability); err != nil {
		return nil, err
	}
	return s.uow.GetAvailabilityRepository(ctx).ListByDoctor(ctx, doctor.ID)
}

// ListAvailableSlots returns the open slots of a verified doctor
func (s *Service) ListAvailableSlots(ctx context.Context, patient *entity.User, doctorID string) ([]*entity.Availability, error) {
	if err := authz.Require(patient, authz.ActionBrowseSlots); err != nil {
		return nil, err
	}
	if strings.TrimSpace(doctorID) == "" {
		return nil, errs.NewValidationError("doctorId", "required")
	}

	doctor, err := s.uow.GetUserRepository(ctx).GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	// Unverified doctors are not listed anywhere patients can see
	if !doctor.IsVerifiedDoctor() {
		return nil, errs.ErrUserNotFound
	}

	slots, err := s.uow.GetAvailabilityRepository(ctx).ListOpenByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	open := make([]*entity.Availability, 0, len(slots))
	for _, slot := range slots {
		if slot.Status == entity.SlotAvailable && !slot.IsBound() {
			open = append(open, slot)
		}
	}
	return open, nil
}
