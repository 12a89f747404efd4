package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment represents a booking between a patient and a doctor
type Appointment struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)"`
	PatientID          string    `gorm:"not null;type:varchar(36);index"`
	DoctorID           string    `gorm:"not null;type:varchar(36);index"`
	StartTime          time.Time `gorm:"not null"`
	EndTime            time.Time `gorm:"not null"`
	Status             string    `gorm:"not null;size:20;default:SCHEDULED"`
	PatientDescription *string   `gorm:"type:text"`
	Notes              *string   `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`

	Patient *User `gorm:"foreignKey:PatientID;references:ID"`
	Doctor  *User `gorm:"foreignKey:DoctorID;references:ID"`
}

// TableName specifies the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
