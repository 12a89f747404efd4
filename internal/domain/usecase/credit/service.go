package credit

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// PlanResolver tells which subscription plan a principal currently holds
type PlanResolver interface {
	CurrentPlan(ctx context.Context, principal *entity.Principal) (entity.Plan, bool)
}

// Service implements the caller-facing credit operations
type Service struct {
	uow              persistence.UnitOfWork
	plans            PlanResolver
	invalidator      coreport.ViewInvalidator
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
	billingLocation  *time.Location
	allocationPolicy FailurePolicy
}

// NewService creates a credit service billing in UTC with a best-effort allocation policy
func NewService(
	uow persistence.UnitOfWork,
	plans PlanResolver,
	invalidator coreport.ViewInvalidator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:              uow,
		plans:            plans,
		invalidator:      invalidator,
		timeProvider:     timeProvider,
		logger:           logger,
		billingLocation:  time.UTC,
		allocationPolicy: BestEffort,
	}
}

// WithBillingLocation sets the time zone whose calendar months define billing periods
func (s *Service) WithBillingLocation(loc *time.Location) *Service {
	if loc != nil {
		s.billingLocation = loc
	}
	return s
}

// WithAllocationPolicy overrides how allocation failures are reported
func (s *Service) WithAllocationPolicy(policy FailurePolicy) *Service {
	s.allocationPolicy = policy
	return s
}

func (s *Service) invalidate(ctx context.Context, paths ...string) {
	if err := s.invalidator.Invalidate(ctx, paths...); err != nil {
		s.logger.Warn("Failed to invalidate dashboard views", map[string]any{
			"paths": paths,
			"error": err.Error(),
		})
	}
}
