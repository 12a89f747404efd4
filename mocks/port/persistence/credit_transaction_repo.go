package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockCreditTransactionRepository is a testify mock for persistence.CreditTransactionRepository
type MockCreditTransactionRepository struct {
	mock.Mock
}

// MockCreditTransactionRepositoryExpecter registers expectations on MockCreditTransactionRepository
type MockCreditTransactionRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockCreditTransactionRepository creates a mock whose expectations are asserted on cleanup
func NewMockCreditTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreditTransactionRepository {
	m := &MockCreditTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreditTransactionRepository) EXPECT() *MockCreditTransactionRepositoryExpecter {
	return &MockCreditTransactionRepositoryExpecter{mock: &m.Mock}
}

func (m *MockCreditTransactionRepository) Create(ctx context.Context, tx *entity.CreditTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCreditTransactionRepository) LatestPurchase(ctx context.Context, userID string) (*entity.CreditTransaction, error) {
	ret := m.Called(ctx, userID)
	tx, _ := ret.Get(0).(*entity.CreditTransaction)
	return tx, ret.Error(1)
}

func (m *MockCreditTransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditTransaction, error) {
	ret := m.Called(ctx, userID, limit)
	txs, _ := ret.Get(0).([]*entity.CreditTransaction)
	return txs, ret.Error(1)
}

func (m *MockCreditTransactionRepository) SumByUser(ctx context.Context, userID string) (int64, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (e *MockCreditTransactionRepositoryExpecter) Create(ctx, tx any) *mock.Call {
	return e.mock.On("Create", ctx, tx)
}

func (e *MockCreditTransactionRepositoryExpecter) LatestPurchase(ctx, userID any) *mock.Call {
	return e.mock.On("LatestPurchase", ctx, userID)
}

func (e *MockCreditTransactionRepositoryExpecter) ListByUser(ctx, userID, limit any) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID, limit)
}

func (e *MockCreditTransactionRepositoryExpecter) SumByUser(ctx, userID any) *mock.Call {
	return e.mock.On("SumByUser", ctx, userID)
}
