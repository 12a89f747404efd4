package onboarding

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// SetUserRole performs the one-time move out of UNASSIGNED and returns the new landing path
func (s *Service) SetUserRole(ctx context.Context, user *entity.User, req usecase.RoleRequest) (*usecase.RoleResult, error) {
	if user == nil {
		return nil, errs.ErrUnauthenticated
	}
	if user.Role != entity.RoleUnassigned {
		return nil, errs.ErrRoleAlreadyAssigned
	}
	if err := authz.Require(user, authz.ActionOnboard); err != nil {
		return nil, err
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	var profile *entity.DoctorProfile
	if role == entity.RoleDoctor {
		if profile, err = doctorProfile(req); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err = s.uow.Do(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)

		current, err := users.GetByID(txCtx, user.ID)
		if err != nil {
			return err
		}
		if err := current.AssignRole(role, profile, s.timeProvider); err != nil {
			return err
		}
		if err := users.Update(txCtx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	path, err := authz.DashboardPath(updated)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User onboarded", map[string]any{
		"user_id": updated.ID,
		"role":    string(updated.Role),
	})
	s.invalidate(ctx, authz.PathHome)

	return &usecase.RoleResult{User: updated, RedirectPath: path}, nil
}

// Dashboard returns the landing path for the user's role
func (s *Service) Dashboard(user *entity.User) (string, error) {
	if user == nil {
		return "", errs.ErrUnauthenticated
	}
	return authz.DashboardPath(user)
}
