package migration

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
)

// SeedAdmins makes sure every configured identity-provider subject has an ADMIN
// account. Onboarding never grants ADMIN, so this is the only way to get one.
func SeedAdmins(ctx context.Context, uow persistence.UnitOfWork, externalIDs []string, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	for _, externalID := range externalIDs {
		externalID = strings.TrimSpace(externalID)
		if externalID == "" {
			continue
		}

		err := uow.Do(ctx, func(ctx context.Context) error {
			return seedAdmin(ctx, uow.GetUserRepository(ctx), externalID, timeProvider)
		})
		if err != nil {
			logger.Error("Failed to seed admin", map[string]any{
				"external_id": externalID,
				"error":       err.Error(),
			})
			return err
		}

		logger.Info("Admin account ensured", map[string]any{
			"external_id": externalID,
		})
	}

	return nil
}

func seedAdmin(ctx context.Context, users persistence.UserRepository, externalID string, timeProvider coreport.TimeProvider) error {
	user, err := users.GetByExternalID(ctx, externalID)
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		user, err = entity.NewUser(externalID, "", "", "", timeProvider)
		if err != nil {
			return err
		}
		user.Role = entity.RoleAdmin
		return users.Create(ctx, user)
	case err != nil:
		return err
	case user.Role == entity.RoleAdmin:
		return nil
	default:
		user.Role = entity.RoleAdmin
		user.Doctor = nil
		user.UpdatedAt = timeProvider.Now()
		return users.Update(ctx, user)
	}
}
