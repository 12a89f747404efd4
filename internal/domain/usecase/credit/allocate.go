package credit

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// AllocateMonthlyCredits grants the principal's plan allowance once per billing period.
// Only patients receive allowances. The grant entry and the balance increment share
// one unit of work; any failure is handled by the allocation policy.
func (s *Service) AllocateMonthlyCredits(ctx context.Context, principal *entity.Principal) (*usecase.AllocationResult, error) {
	if principal == nil || principal.User == nil {
		return nil, errs.ErrUnauthenticated
	}

	user := principal.User
	unchanged := &usecase.AllocationResult{User: user}

	allowed, err := authz.Allows(user.Role, authz.ActionAllocateCredits)
	if err != nil || !allowed {
		return unchanged, nil
	}

	plan, ok := s.plans.CurrentPlan(ctx, principal)
	if !ok {
		s.logger.Debug("No plan held, skipping credit allocation", map[string]any{
			"user_id": user.ID,
		})
		return unchanged, nil
	}
	unchanged.Plan = plan

	result, err := s.grant(ctx, user, plan)
	if err != nil {
		return unchanged, s.allocationPolicy.Handle(s.logger, "allocate_monthly_credits", err, map[string]any{
			"user_id": user.ID,
			"plan":    plan.String(),
		})
	}

	if result.Granted {
		s.logger.Info("Monthly credits allocated", map[string]any{
			"user_id":     user.ID,
			"plan":        plan.String(),
			"amount":      result.Amount,
			"new_balance": result.User.Credits(),
		})
		s.invalidate(ctx, authz.PathDoctors, authz.PathAppointments)
	}

	return result, nil
}

func (s *Service) grant(ctx context.Context, user *entity.User, plan entity.Plan) (*usecase.AllocationResult, error) {
	now := s.timeProvider.Now()
	var result *usecase.AllocationResult

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		ledger := s.uow.GetCreditTransactionRepository(txCtx)

		latest, err := ledger.LatestPurchase(txCtx, user.ID)
		if err != nil {
			return err
		}
		if latest != nil && latest.CoversPeriod(now, plan, s.billingLocation) {
			result = &usecase.AllocationResult{User: user, Plan: plan}
			return nil
		}

		entry, err := entity.NewCreditPurchase(user.ID, plan, s.timeProvider)
		if err != nil {
			return err
		}
		if err := ledger.Create(txCtx, entry); err != nil {
			return errs.NewLedgerError("credit_purchase", user.ID, entry.Amount, err)
		}

		users := s.uow.GetUserRepository(txCtx)
		updated, err := users.AdjustCredits(txCtx, user.ID, entry.Amount)
		if err != nil {
			return errs.NewLedgerError("credit_purchase", user.ID, entry.Amount, err)
		}

		updated.SetPlan(plan, s.timeProvider)
		if err := users.Update(txCtx, updated); err != nil {
			return err
		}

		result = &usecase.AllocationResult{User: updated, Granted: true, Plan: plan, Amount: entry.Amount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
