package onboarding

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// ListPendingDoctors returns doctors waiting for credential review
func (s *Service) ListPendingDoctors(ctx context.Context, admin *entity.User) ([]*entity.User, error) {
	if err := authz.Require(admin, authz.ActionReviewDoctors); err != nil {
		return nil, err
	}
	return s.uow.GetUserRepository(ctx).ListDoctorsByVerification(ctx, entity.VerificationPending)
}

// SetDoctorVerification records an admin's verdict on a doctor
func (s *Service) SetDoctorVerification(ctx context.Context, admin *entity.User, doctorID string, status entity.VerificationStatus) (*entity.User, error) {
	if err := authz.Require(admin, authz.ActionReviewDoctors); err != nil {
		return nil, err
	}

	var reviewed *entity.User
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)

		doctor, err := users.GetByID(txCtx, doctorID)
		if err != nil {
			return err
		}
		if err := doctor.SetVerification(status, s.timeProvider); err != nil {
			return err
		}
		if err := users.Update(txCtx, doctor); err != nil {
			return err
		}
		reviewed = doctor
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Doctor verification updated", map[string]any{
		"admin_id":  admin.ID,
		"doctor_id": reviewed.ID,
		"status":    string(status),
	})
	s.invalidate(ctx, authz.PathAdmin, authz.PathDoctors)

	return reviewed, nil
}
