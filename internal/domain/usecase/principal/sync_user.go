package principal

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
)

// SyncUser creates the local user on first sign-in, or refreshes the display
// fields copied from the identity provider on later ones.
func (s *Service) SyncUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	var synced *entity.User
	err = s.uow.Do(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)

		existing, err := users.GetByExternalID(txCtx, claims.Subject)
		switch {
		case err == nil:
			if existing.UpdateProfile(claims.Email, claims.Name, claims.ImageURL, s.timeProvider) {
				if err := users.Update(txCtx, existing); err != nil {
					return err
				}
			}
			synced = existing
			return nil
		case !errors.Is(err, errs.ErrUserNotFound):
			return err
		}

		user, err := entity.NewUser(claims.Subject, claims.Email, claims.Name, claims.ImageURL, s.timeProvider)
		if err != nil {
			return err
		}
		if err := users.Create(txCtx, user); err != nil {
			return err
		}

		s.logger.Info("User created", map[string]any{
			"user_id":     user.ID,
			"external_id": user.ExternalID,
		})
		synced = user
		return nil
	})

	// A concurrent first sign-in won the insert; the row is there now.
	if errors.Is(err, errs.ErrDuplicateUser) {
		return s.uow.GetUserRepository(ctx).GetByExternalID(ctx, claims.Subject)
	}
	if err != nil {
		return nil, err
	}

	return synced, nil
}
