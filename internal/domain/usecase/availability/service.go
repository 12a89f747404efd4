package availability

import (
	"context"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// Service manages doctors' bookable slots
type Service struct {
	uow          persistence.UnitOfWork
	invalidator  coreport.ViewInvalidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new availability service
func NewService(
	uow persistence.UnitOfWork,
	invalidator coreport.ViewInvalidator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AvailabilityUseCase {
	return &Service{
		uow:          uow,
		invalidator:  invalidator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *Service) invalidate(ctx context.Context, paths ...string) {
	if err := s.invalidator.Invalidate(ctx, paths...); err != nil {
		s.logger.Warn("Failed to invalidate dashboard views", map[string]any{
			"paths": paths,
			"error": err.Error(),
		})
	}
}
