package dto

import (
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// SlotRequest sets a doctor's availability window
type SlotRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// SlotResponse represents an availability slot
type SlotResponse struct {
	ID            string    `json:"id"`
	DoctorID      string    `json:"doctorId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	AppointmentID string    `json:"appointmentId,omitempty"`
}

// BookingRequest books a slot
type BookingRequest struct {
	SlotID      string `json:"slotId" binding:"required"`
	Description string `json:"description"`
}

// NotesRequest replaces a doctor's notes on an appointment
type NotesRequest struct {
	Notes string `json:"notes"`
}

// AppointmentResponse represents an appointment
type AppointmentResponse struct {
	ID                 string          `json:"id"`
	PatientID          string          `json:"patientId"`
	DoctorID           string          `json:"doctorId"`
	StartTime          time.Time       `json:"startTime"`
	EndTime            time.Time       `json:"endTime"`
	Status             string          `json:"status"`
	PatientDescription string          `json:"patientDescription,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	Patient            *PatientSummary `json:"patient,omitempty"`
	Doctor             *DoctorSummary  `json:"doctor,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// NewSlotResponse maps a slot entity
func NewSlotResponse(s *entity.Availability) SlotResponse {
	resp := SlotResponse{
		ID:        s.ID,
		DoctorID:  s.DoctorID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    string(s.Status),
	}
	if s.AppointmentID != nil {
		resp.AppointmentID = *s.AppointmentID
	}
	return resp
}

// NewSlotResponses maps a list of slots
func NewSlotResponses(slots []*entity.Availability) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotResponse(s))
	}
	return out
}

// NewAppointmentResponse maps an appointment with whatever display data it carries
func NewAppointmentResponse(a *entity.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.PatientDescription != nil {
		resp.PatientDescription = *a.PatientDescription
	}
	if a.Notes != nil {
		resp.Notes = *a.Notes
	}
	if a.Patient != nil {
		resp.Patient = &PatientSummary{
			ID:       a.Patient.ID,
			Name:     a.Patient.Name,
			Email:    a.Patient.Email,
			ImageURL: a.Patient.ImageURL,
		}
	}
	if a.Doctor != nil {
		resp.Doctor = &DoctorSummary{
			ID:       a.Doctor.ID,
			Name:     a.Doctor.Name,
			ImageURL: a.Doctor.ImageURL,
		}
		if a.Doctor.Doctor != nil {
			resp.Doctor.Speciality = a.Doctor.Doctor.Speciality
		}
	}
	return resp
}

// NewAppointmentResponses maps a list of appointments
func NewAppointmentResponses(appointments []*entity.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, NewAppointmentResponse(a))
	}
	return out
}
