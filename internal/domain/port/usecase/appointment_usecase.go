package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// AppointmentUseCase drives the appointment lifecycle
type AppointmentUseCase interface {
	BookAppointment(ctx context.Context, patient *entity.User, slotID, description string) (*entity.Appointment, error)
	CancelAppointment(ctx context.Context, actor *entity.User, appointmentID string) (*entity.Appointment, error)
	MarkCompleted(ctx context.Context, doctor *entity.User, appointmentID string) (*entity.Appointment, error)
	AddNotes(ctx context.Context, doctor *entity.User, appointmentID, text string) (*entity.Appointment, error)

	// ListUpcoming returns the doctor's SCHEDULED appointments ordered by start time
	ListUpcoming(ctx context.Context, doctor *entity.User) ([]*entity.Appointment, error)

	// ListForPatient returns all of the patient's appointments, latest first
	ListForPatient(ctx context.Context, patient *entity.User) ([]*entity.Appointment, error)
}
