package credit

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// History lists the user's ledger entries, newest first
func (s *Service) History(ctx context.Context, user *entity.User, limit int) ([]*entity.CreditTransaction, error) {
	if err := authz.Require(user, authz.ActionViewCredits); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return s.uow.GetCreditTransactionRepository(ctx).ListByUser(ctx, user.ID, limit)
}
