package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the database model for users. Doctor profile columns are
// null unless the role is DOCTOR.
type User struct {
	ID                 string  `gorm:"primaryKey;type:varchar(36)"`
	ExternalID         string  `gorm:"uniqueIndex;not null;size:255"`
	Email              string  `gorm:"size:255"`
	Name               string  `gorm:"size:255"`
	ImageURL           string  `gorm:"size:1024"`
	Role               string  `gorm:"not null;size:20;default:UNASSIGNED;index"`
	Credits            int64   `gorm:"not null;default:0"`
	PlanID             *string `gorm:"size:50"`
	Speciality         *string `gorm:"size:255"`
	Experience         *int
	CredentialURL      *string   `gorm:"size:1024"`
	Description        *string   `gorm:"type:text"`
	VerificationStatus *string   `gorm:"size:20;index"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an identifier to rows created outside the domain (seeds)
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
