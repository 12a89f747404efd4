package principal

import (
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// Service resolves session tokens into stored users
type Service struct {
	uow          persistence.UnitOfWork
	identity     coreport.IdentityProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new principal service
func NewService(
	uow persistence.UnitOfWork,
	identity coreport.IdentityProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PrincipalUseCase {
	return &Service{
		uow:          uow,
		identity:     identity,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
