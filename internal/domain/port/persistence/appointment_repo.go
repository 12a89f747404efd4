package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// AppointmentRepository defines methods to interact with appointment data
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error

	// GetByID retrieves an appointment
	//
	// Possible errors:
	// - ErrAppointmentNotFound: If the appointment doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)

	// GetByIDForUpdate re-reads an appointment and locks its row until the unit of work ends
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Appointment, error)

	// Update stores status and notes
	//
	// Possible errors:
	// - ErrAppointmentNotFound: If the appointment doesn't exist
	Update(ctx context.Context, appointment *entity.Appointment) error

	// ListByDoctorAndStatus returns the doctor's appointments in status, ordered by
	// start time ascending, with patient display data populated
	ListByDoctorAndStatus(ctx context.Context, doctorID string, status entity.AppointmentStatus) ([]*entity.Appointment, error)

	// ListByPatient returns the patient's appointments, latest start first,
	// with doctor display data populated
	ListByPatient(ctx context.Context, patientID string) ([]*entity.Appointment, error)
}
