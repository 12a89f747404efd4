package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	baseRepository
	timeProvider coreport.TimeProvider
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		baseRepository: newBaseRepository(db, logger),
		timeProvider:   timeProvider,
	}
}

func userToEntity(m *model.User) (*entity.User, error) {
	role, err := entity.ParseRole(m.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: stored user %s has invalid role: %s", errs.ErrInternalServer, m.ID, err.Error())
	}

	user := &entity.User{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		Name:       m.Name,
		Email:      m.Email,
		ImageURL:   m.ImageURL,
		Role:       role,
		PlanID:     m.PlanID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	user.SetCredits(m.Credits)

	if role == entity.RoleDoctor {
		profile := &entity.DoctorProfile{}
		if m.Speciality != nil {
			profile.Speciality = *m.Speciality
		}
		if m.Experience != nil {
			profile.Experience = *m.Experience
		}
		if m.CredentialURL != nil {
			profile.CredentialURL = *m.CredentialURL
		}
		if m.Description != nil {
			profile.Description = *m.Description
		}
		if m.VerificationStatus != nil {
			profile.VerificationStatus = entity.VerificationStatus(*m.VerificationStatus)
		}
		user.Doctor = profile
	}

	return user, nil
}

func userToModel(u *entity.User) *model.User {
	m := &model.User{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Name:       u.Name,
		ImageURL:   u.ImageURL,
		Role:       string(u.Role),
		Credits:    u.Credits(),
		PlanID:     u.PlanID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if d := u.Doctor; d != nil {
		status := string(d.VerificationStatus)
		m.Speciality = &d.Speciality
		m.Experience = &d.Experience
		m.CredentialURL = &d.CredentialURL
		m.Description = &d.Description
		m.VerificationStatus = &status
	}
	return m
}

func (r *UserRepository) first(ctx context.Context, operation string, fields map[string]any, query any, args ...any) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, errs.ErrUserNotFound, fields)
	}
	return userToEntity(&userModel)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "getting user", map[string]any{"user_id": id}, "id = ?", id)
}

// GetByExternalID retrieves a user by identity-provider subject
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	return r.first(ctx, "getting user by external id", map[string]any{"external_id": externalID}, "external_id = ?", externalID)
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":     user.ID,
		"external_id": user.ExternalID,
	})

	err := r.db.WithContext(ctx).Create(userToModel(user)).Error
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate user operation", map[string]any{
				"external_id": user.ExternalID,
			})
			return errs.ErrDuplicateUser
		}
		return r.handleDatabaseError("creating user", err, errs.ErrUserNotFound, map[string]any{"user_id": user.ID})
	}
	return nil
}

// Update writes profile, role and plan columns. The credit balance is owned by AdjustCredits.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	m := userToModel(user)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":               m.Email,
			"name":                m.Name,
			"image_url":           m.ImageURL,
			"role":                m.Role,
			"plan_id":             m.PlanID,
			"speciality":          m.Speciality,
			"experience":          m.Experience,
			"credential_url":      m.CredentialURL,
			"description":         m.Description,
			"verification_status": m.VerificationStatus,
			"updated_at":          m.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, errs.ErrUserNotFound, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}
	return nil
}

// AdjustCredits adds delta to the stored balance in a single statement and
// returns the user as stored afterwards. The balance has no floor.
func (r *UserRepository) AdjustCredits(ctx context.Context, userID string, delta int64) (*entity.User, error) {
	fields := map[string]any{"user_id": userID, "delta": delta}

	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"credits":    gorm.Expr("credits + ?", delta),
			"updated_at": r.timeProvider.Now(),
		}).Error
	if err != nil {
		return nil, r.handleDatabaseError("adjusting credits", err, errs.ErrUserNotFound, fields)
	}

	var userModel model.User
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("reading adjusted balance", err, errs.ErrUserNotFound, fields)
	}

	r.logger.Debug("Credits adjusted", map[string]any{
		"user_id":     userID,
		"delta":       delta,
		"new_balance": userModel.Credits,
	})
	return userToEntity(&userModel)
}

// ListDoctorsByVerification lists doctors in the given review state, oldest first
func (r *UserRepository) ListDoctorsByVerification(ctx context.Context, status entity.VerificationStatus) ([]*entity.User, error) {
	var models []model.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND verification_status = ?", string(entity.RoleDoctor), string(status)).
		Order("created_at asc").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing doctors", err, errs.ErrUserNotFound, map[string]any{"status": string(status)})
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		user, err := userToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
