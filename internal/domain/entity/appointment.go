package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

// Appointment statuses. COMPLETED and CANCELLED are terminal.
const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is a booked consultation between a patient and a doctor
type Appointment struct {
	ID                 string
	PatientID          string
	DoctorID           string
	StartTime          time.Time
	EndTime            time.Time
	Status             AppointmentStatus
	PatientDescription *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Display data, populated by list queries only
	Patient *User
	Doctor  *User
}

// NewAppointment creates a scheduled appointment over a slot's time range
func NewAppointment(patientID string, slot *Availability, description string, timeProvider coreport.TimeProvider) (*Appointment, error) {
	if patientID == "" {
		return nil, errs.NewValidationError("patientId", "required")
	}
	if slot == nil {
		return nil, errs.ErrSlotNotFound
	}
	if patientID == slot.DoctorID {
		return nil, errs.NewValidationError("patientId", "doctor cannot book own slot")
	}

	now := timeProvider.Now()
	a := &Appointment{
		ID:        uuid.NewString(),
		PatientID: patientID,
		DoctorID:  slot.DoctorID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Status:    AppointmentScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if d := strings.TrimSpace(description); d != "" {
		a.PatientDescription = &d
	}
	return a, nil
}

// IsParticipant reports whether userID is the bound doctor or the bound patient
func (a *Appointment) IsParticipant(userID string) bool {
	return userID != "" && (userID == a.DoctorID || userID == a.PatientID)
}

// IsTerminal reports whether no further transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentCompleted || a.Status == AppointmentCancelled
}

func (a *Appointment) transitionError(to AppointmentStatus) error {
	return errs.NewStateTransitionError("appointment", a.ID, string(a.Status), string(to))
}

// Cancel moves a scheduled appointment to CANCELLED
func (a *Appointment) Cancel(timeProvider coreport.TimeProvider) error {
	if a.Status != AppointmentScheduled {
		return a.transitionError(AppointmentCancelled)
	}
	a.Status = AppointmentCancelled
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Complete moves a scheduled appointment to COMPLETED once its end time has passed
func (a *Appointment) Complete(timeProvider coreport.TimeProvider) error {
	if a.Status != AppointmentScheduled {
		return a.transitionError(AppointmentCompleted)
	}

	now := timeProvider.Now()
	if now.Before(a.EndTime) {
		return errs.ErrAppointmentNotEnded
	}

	a.Status = AppointmentCompleted
	a.UpdatedAt = now
	return nil
}

// SetNotes replaces the doctor's notes. Notes may be edited in any status.
func (a *Appointment) SetNotes(text string, timeProvider coreport.TimeProvider) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errs.NewValidationError("notes", "required")
	}
	a.Notes = &trimmed
	a.UpdatedAt = timeProvider.Now()
	return nil
}
