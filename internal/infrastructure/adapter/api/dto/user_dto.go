package dto

import (
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// DoctorProfileResponse is the doctor-only part of a user
type DoctorProfileResponse struct {
	Speciality         string `json:"speciality"`
	Experience         int    `json:"experience"`
	CredentialURL      string `json:"credentialUrl"`
	Description        string `json:"description"`
	VerificationStatus string `json:"verificationStatus"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	Name      string                 `json:"name"`
	ImageURL  string                 `json:"imageUrl,omitempty"`
	Role      string                 `json:"role"`
	Credits   int64                  `json:"credits"`
	Plan      string                 `json:"plan,omitempty"`
	Doctor    *DoctorProfileResponse `json:"doctor,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// CurrentUserResponse is the signed-in user with the view they should land on
type CurrentUserResponse struct {
	User          UserResponse `json:"user"`
	DashboardPath string       `json:"dashboardPath"`
}

// RoleRequest is the onboarding form
type RoleRequest struct {
	Role          string `json:"role" binding:"required"`
	Speciality    string `json:"speciality"`
	Experience    int    `json:"experience"`
	CredentialURL string `json:"credentialUrl"`
	Description   string `json:"description"`
}

// RoleResponse is the onboarded user and the path to redirect to
type RoleResponse struct {
	User         UserResponse `json:"user"`
	RedirectPath string       `json:"redirectPath"`
}

// VerificationRequest is an admin's decision on a doctor's credentials
type VerificationRequest struct {
	Status string `json:"status" binding:"required,oneof=VERIFIED REJECTED"`
}

// DoctorSummary is the public view of a doctor shown next to appointments
type DoctorSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Speciality string `json:"speciality,omitempty"`
}

// PatientSummary is the view of a patient shown to their doctor
type PatientSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// NewUserResponse maps a user entity onto its API representation
func NewUserResponse(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		ImageURL:  u.ImageURL,
		Role:      string(u.Role),
		Credits:   u.Credits(),
		CreatedAt: u.CreatedAt,
	}
	if plan, ok := u.CurrentPlan(); ok {
		resp.Plan = plan.String()
	}
	if u.Doctor != nil {
		resp.Doctor = &DoctorProfileResponse{
			Speciality:         u.Doctor.Speciality,
			Experience:         u.Doctor.Experience,
			CredentialURL:      u.Doctor.CredentialURL,
			Description:        u.Doctor.Description,
			VerificationStatus: string(u.Doctor.VerificationStatus),
		}
	}
	return resp
}

// NewUserResponses maps a list of users
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
