package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// Service drives appointments through SCHEDULED -> COMPLETED | CANCELLED
type Service struct {
	uow          persistence.UnitOfWork
	ledger       usecase.CreditLedger
	invalidator  coreport.ViewInvalidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new appointment service
func NewService(
	uow persistence.UnitOfWork,
	ledger usecase.CreditLedger,
	invalidator coreport.ViewInvalidator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AppointmentUseCase {
	return &Service{
		uow:          uow,
		ledger:       ledger,
		invalidator:  invalidator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func requireID(appointmentID string) error {
	if strings.TrimSpace(appointmentID) == "" {
		return errs.NewValidationError("appointmentId", "required")
	}
	return nil
}

func requireBoundDoctor(appointment *entity.Appointment, doctor *entity.User) error {
	if appointment.DoctorID != doctor.ID {
		return fmt.Errorf("%w: appointment %s belongs to another doctor", errs.ErrForbidden, appointment.ID)
	}
	return nil
}

func (s *Service) invalidateFor(ctx context.Context, role entity.Role) {
	paths, err := authz.AppointmentViews(role)
	if err != nil {
		s.logger.Warn("No dashboard views for role", map[string]any{"role": string(role), "error": err.Error()})
		return
	}
	if len(paths) == 0 {
		return
	}
	if err := s.invalidator.Invalidate(ctx, paths...); err != nil {
		s.logger.Warn("Failed to invalidate dashboard views", map[string]any{
			"paths": paths,
			"error": err.Error(),
		})
	}
}
