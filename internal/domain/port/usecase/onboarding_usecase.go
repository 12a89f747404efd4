package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// RoleRequest is the onboarding form
type RoleRequest struct {
	Role          string
	Speciality    string
	Experience    int
	CredentialURL string
	Description   string
}

// RoleResult is the onboarded user and where to send them next
type RoleResult struct {
	User         *entity.User
	RedirectPath string
}

// OnboardingUseCase covers role assignment and doctor verification
type OnboardingUseCase interface {
	SetUserRole(ctx context.Context, user *entity.User, req RoleRequest) (*RoleResult, error)
	Dashboard(user *entity.User) (string, error)
	ListPendingDoctors(ctx context.Context, admin *entity.User) ([]*entity.User, error)
	SetDoctorVerification(ctx context.Context, admin *entity.User, doctorID string, status entity.VerificationStatus) (*entity.User, error)
}
