package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// AvailabilityRepository defines methods to interact with doctor slots
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.Availability) error

	// GetByID retrieves a slot
	//
	// Possible errors:
	// - ErrSlotNotFound: If the slot doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Availability, error)

	// GetByIDForUpdate retrieves a slot and locks its row until the unit of work ends
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Availability, error)

	// Update stores status and binding
	Update(ctx context.Context, slot *entity.Availability) error

	// ListByDoctor returns all of a doctor's slots ordered by start time ascending
	ListByDoctor(ctx context.Context, doctorID string) ([]*entity.Availability, error)

	// ListOpenByDoctor returns AVAILABLE unbound slots ordered by start time ascending
	ListOpenByDoctor(ctx context.Context, doctorID string) ([]*entity.Availability, error)

	// DeleteUnbound deletes the given slots of a doctor, skipping any that are
	// bound to an appointment, and returns how many rows were removed
	DeleteUnbound(ctx context.Context, doctorID string, ids []string) (int64, error)
}
