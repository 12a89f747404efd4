package repository

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditTransactionRepository implements persistence.CreditTransactionRepository using GORM
type CreditTransactionRepository struct {
	baseRepository
}

// NewCreditTransactionRepository creates a new CreditTransactionRepository instance
func NewCreditTransactionRepository(db *gorm.DB, logger coreport.Logger) *CreditTransactionRepository {
	return &CreditTransactionRepository{baseRepository: newBaseRepository(db, logger)}
}

func creditTransactionToEntity(m *model.CreditTransaction) *entity.CreditTransaction {
	return &entity.CreditTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Type:      entity.CreditTransactionType(m.Type),
		PackageID: m.PackageID,
		CreatedAt: m.CreatedAt,
	}
}

// Create appends an entry to the ledger
func (r *CreditTransactionRepository) Create(ctx context.Context, tx *entity.CreditTransaction) error {
	m := &model.CreditTransaction{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		PackageID: tx.PackageID,
		CreatedAt: tx.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating ledger entry", err, errs.ErrUserNotFound, map[string]any{
			"user_id": tx.UserID,
			"type":    string(tx.Type),
			"amount":  tx.Amount,
		})
	}

	r.logger.Debug("Ledger entry created", map[string]any{
		"entry_id": m.ID,
		"user_id":  tx.UserID,
		"type":     string(tx.Type),
		"amount":   tx.Amount,
	})
	return nil
}

// LatestPurchase returns the user's most recent CREDIT_PURCHASE entry, or nil if there is none
func (r *CreditTransactionRepository) LatestPurchase(ctx context.Context, userID string) (*entity.CreditTransaction, error) {
	var models []model.CreditTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(entity.CreditPurchase)).
		Order("created_at desc").
		Limit(1).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("reading latest purchase", err, errs.ErrUserNotFound, map[string]any{"user_id": userID})
	}
	if len(models) == 0 {
		return nil, nil
	}
	return creditTransactionToEntity(&models[0]), nil
}

// ListByUser returns up to limit entries, newest first
func (r *CreditTransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditTransaction, error) {
	var models []model.CreditTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing ledger entries", err, errs.ErrUserNotFound, map[string]any{"user_id": userID})
	}

	entries := make([]*entity.CreditTransaction, 0, len(models))
	for i := range models {
		entries = append(entries, creditTransactionToEntity(&models[i]))
	}
	return entries, nil
}

// SumByUser totals the user's ledger; it equals the stored balance when the ledger is consistent
func (r *CreditTransactionRepository) SumByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing ledger", err, errs.ErrUserNotFound, map[string]any{"user_id": userID})
	}
	return total, nil
}
