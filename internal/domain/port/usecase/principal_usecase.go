package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// PrincipalUseCase maps session tokens onto stored users
type PrincipalUseCase interface {
	// Resolve authenticates the token and loads the linked user. Read-only.
	Resolve(ctx context.Context, token string) (*entity.Principal, error)

	// CurrentPlan returns the plan a patient holds at the identity provider
	CurrentPlan(ctx context.Context, principal *entity.Principal) (entity.Plan, bool)

	// SyncUser creates the local user on first sign-in or refreshes its display fields
	SyncUser(ctx context.Context, token string) (*entity.User, error)
}
