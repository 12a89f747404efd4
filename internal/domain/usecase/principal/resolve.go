package principal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
)

func (s *Service) authenticate(ctx context.Context, token string) (*coreport.IdentityClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrUnauthenticated
	}

	claims, err := s.identity.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}
	if claims == nil || claims.Subject == "" {
		return nil, errs.ErrUnauthenticated
	}
	return claims, nil
}

// Resolve authenticates the token and loads the linked user
func (s *Service) Resolve(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByExternalID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	return &entity.Principal{User: user, Claims: claims}, nil
}

// CurrentPlan returns the highest plan a patient holds, checking premium first
func (s *Service) CurrentPlan(_ context.Context, principal *entity.Principal) (entity.Plan, bool) {
	if principal == nil || principal.User == nil || principal.Claims == nil {
		return "", false
	}

	allowed, err := authz.Allows(principal.Role(), authz.ActionAllocateCredits)
	if err != nil || !allowed {
		return "", false
	}

	for _, plan := range entity.PlansByPriority {
		if s.identity.HasPlan(principal.Claims, plan.String()) {
			return plan, true
		}
	}
	return "", false
}
