package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/google/uuid"
)

// Role is the closed set of user roles
type Role string

// User roles
const (
	RoleUnassigned Role = "UNASSIGNED"
	RolePatient    Role = "PATIENT"
	RoleDoctor     Role = "DOCTOR"
	RoleAdmin      Role = "ADMIN"
)

// ParseRole converts a stored or submitted role name into a Role
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleUnassigned, RolePatient, RoleDoctor, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValidationError("role", fmt.Sprintf("unknown role %q", s))
	}
}

// VerificationStatus tracks admin review of a doctor's credentials
type VerificationStatus string

// Verification statuses
const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// DoctorProfile holds the doctor-only user fields
type DoctorProfile struct {
	Speciality         string
	Experience         int // years
	CredentialURL      string
	Description        string
	VerificationStatus VerificationStatus
}

// User represents a platform account with its credit balance
type User struct {
	ID         string
	ExternalID string // subject assigned by the identity provider
	Name       string
	Email      string
	ImageURL   string
	Role       Role
	credits    int64 // running balance, equal to the sum of the user's ledger entries
	PlanID     *string
	Doctor     *DoctorProfile // nil unless Role is DOCTOR
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates the local record for a principal seen for the first time
func NewUser(externalID, email, name, imageURL string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, errs.NewValidationError("externalId", "required")
	}

	now := timeProvider.Now()
	return &User{
		ID:         uuid.NewString(),
		ExternalID: externalID,
		Email:      email,
		Name:       name,
		ImageURL:   imageURL,
		Role:       RoleUnassigned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Credits returns the current credit balance
func (u *User) Credits() int64 {
	return u.credits
}

// SetCredits overwrites the balance (for repositories restoring stored state)
func (u *User) SetCredits(credits int64) {
	u.credits = credits
}

// ApplyCreditChange adds a signed amount to the balance. There is no floor:
// a doctor's balance can go negative when a cancellation is settled.
func (u *User) ApplyCreditChange(amount int64, timeProvider coreport.TimeProvider) {
	u.credits += amount
	u.UpdatedAt = timeProvider.Now()
}

// CanAfford checks if the user holds at least amount credits
func (u *User) CanAfford(amount int64) bool {
	return u.credits >= amount
}

// CurrentPlan returns the plan of the last monthly grant, if any
func (u *User) CurrentPlan() (Plan, bool) {
	if u.PlanID == nil {
		return "", false
	}
	return Plan(*u.PlanID), true
}

// SetPlan records the plan of a monthly grant
func (u *User) SetPlan(plan Plan, timeProvider coreport.TimeProvider) {
	id := plan.String()
	u.PlanID = &id
	u.UpdatedAt = timeProvider.Now()
}

// IsVerifiedDoctor reports whether the user is a doctor whose credentials were approved
func (u *User) IsVerifiedDoctor() bool {
	return u.Role == RoleDoctor && u.Doctor != nil && u.Doctor.VerificationStatus == VerificationVerified
}

// AssignRole performs the one-time onboarding transition out of UNASSIGNED.
// Doctors start in PENDING verification.
func (u *User) AssignRole(role Role, profile *DoctorProfile, timeProvider coreport.TimeProvider) error {
	if u.Role != RoleUnassigned {
		return errs.ErrRoleAlreadyAssigned
	}

	switch role {
	case RolePatient:
		u.Doctor = nil
	case RoleDoctor:
		if profile == nil {
			return errs.NewValidationError("doctor", "profile required")
		}
		p := *profile
		p.VerificationStatus = VerificationPending
		u.Doctor = &p
	case RoleAdmin, RoleUnassigned:
		return errs.NewValidationError("role", fmt.Sprintf("%s cannot be self-assigned", role))
	default:
		return errs.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	u.Role = role
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// SetVerification records the admin decision on a doctor's credentials
func (u *User) SetVerification(status VerificationStatus, timeProvider coreport.TimeProvider) error {
	if u.Role != RoleDoctor || u.Doctor == nil {
		return errs.NewStateTransitionError("user", u.ID, string(u.Role), "verified doctor")
	}
	if status != VerificationVerified && status != VerificationRejected {
		return errs.NewValidationError("status", fmt.Sprintf("unsupported verification status %q", status))
	}

	u.Doctor.VerificationStatus = status
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// UpdateProfile refreshes display fields copied from the identity provider
func (u *User) UpdateProfile(email, name, imageURL string, timeProvider coreport.TimeProvider) bool {
	if u.Email == email && u.Name == name && u.ImageURL == imageURL {
		return false
	}
	u.Email = email
	u.Name = name
	u.ImageURL = imageURL
	u.UpdatedAt = timeProvider.Now()
	return true
}
