package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// AvailabilityUseCase manages doctors' bookable slots
type AvailabilityUseCase interface {
	// SetAvailabilitySlots replaces the doctor's unbound slots with one new AVAILABLE slot
	SetAvailabilitySlots(ctx context.Context, doctor *entity.User, start, end time.Time) (*entity.Availability, error)

	// ListAvailability returns all of the doctor's slots ordered by start time
	ListAvailability(ctx context.Context, doctor *entity.User) ([]*entity.Availability, error)

	// ListAvailableSlots returns the open slots a patient can book with a verified doctor
	ListAvailableSlots(ctx context.Context, patient *entity.User, doctorID string) ([]*entity.Availability, error)
}
