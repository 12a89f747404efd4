package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/google/uuid"
)

// SlotStatus represents whether an availability slot can still be booked
type SlotStatus string

// Slot statuses
const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotBooked    SlotStatus = "BOOKED"
)

// Availability is a bookable time range offered by a doctor
type Availability struct {
	ID            string
	DoctorID      string
	StartTime     time.Time
	EndTime       time.Time
	Status        SlotStatus
	AppointmentID *string // set once an appointment is bound to the slot
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateTimeRange checks that both bounds are present and start is strictly before end
func ValidateTimeRange(start, end time.Time) error {
	if start.IsZero() {
		return errs.NewValidationError("startTime", "required")
	}
	if end.IsZero() {
		return errs.NewValidationError("endTime", "required")
	}
	if !start.Before(end) {
		return errs.NewValidationError("startTime", "must be before end time")
	}
	return nil
}

// NewAvailability creates an open slot for the doctor
func NewAvailability(doctorID string, start, end time.Time, timeProvider coreport.TimeProvider) (*Availability, error) {
	if doctorID == "" {
		return nil, errs.NewValidationError("doctorId", "required")
	}
	if err := ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Availability{
		ID:        uuid.NewString(),
		DoctorID:  doctorID,
		StartTime: start,
		EndTime:   end,
		Status:    SlotAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsBound reports whether an appointment references this slot
func (a *Availability) IsBound() bool {
	return a.AppointmentID != nil && *a.AppointmentID != ""
}

// Bind attaches an appointment and marks the slot booked
func (a *Availability) Bind(appointmentID string, timeProvider coreport.TimeProvider) error {
	if a.Status != SlotAvailable || a.IsBound() {
		return errs.NewStateTransitionError("availability", a.ID, string(a.Status), string(SlotBooked))
	}

	a.AppointmentID = &appointmentID
	a.Status = SlotBooked
	a.UpdatedAt = timeProvider.Now()
	return nil
}
