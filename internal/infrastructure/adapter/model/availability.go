package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability represents a doctor's bookable slot
type Availability struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	DoctorID      string    `gorm:"not null;type:varchar(36);index"`
	StartTime     time.Time `gorm:"not null"`
	EndTime       time.Time `gorm:"not null"`
	Status        string    `gorm:"not null;size:20;default:AVAILABLE"`
	AppointmentID *string   `gorm:"type:varchar(36);uniqueIndex"` // at most one slot per appointment
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	Doctor User `gorm:"foreignKey:DoctorID;references:ID"`
}

// TableName specifies the table name for Availability
func (Availability) TableName() string {
	return "availabilities"
}

func (a *Availability) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
