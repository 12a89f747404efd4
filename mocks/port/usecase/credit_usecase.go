package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockCreditUseCase is a testify mock for usecase.CreditUseCase
type MockCreditUseCase struct {
	mock.Mock
}

// MockCreditUseCaseExpecter registers expectations on MockCreditUseCase
type MockCreditUseCaseExpecter struct {
	mock *mock.Mock
}

// NewMockCreditUseCase creates a MockCreditUseCase whose expectations are asserted on cleanup
func NewMockCreditUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreditUseCase {
	m := &MockCreditUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreditUseCase) EXPECT() *MockCreditUseCaseExpecter {
	return &MockCreditUseCaseExpecter{mock: &m.Mock}
}

func (m *MockCreditUseCase) AllocateMonthlyCredits(ctx context.Context, principal *entity.Principal) (*usecase.AllocationResult, error) {
	ret := m.Called(ctx, principal)
	result, _ := ret.Get(0).(*usecase.AllocationResult)
	return result, ret.Error(1)
}

func (m *MockCreditUseCase) History(ctx context.Context, user *entity.User, limit int) ([]*entity.CreditTransaction, error) {
	ret := m.Called(ctx, user, limit)
	entries, _ := ret.Get(0).([]*entity.CreditTransaction)
	return entries, ret.Error(1)
}

func (e *MockCreditUseCaseExpecter) AllocateMonthlyCredits(ctx, principal any) *mock.Call {
	return e.mock.On("AllocateMonthlyCredits", ctx, principal)
}

func (e *MockCreditUseCaseExpecter) History(ctx, user, limit any) *mock.Call {
	return e.mock.On("History", ctx, user, limit)
}

// MockCreditLedger is a testify mock for usecase.CreditLedger
type MockCreditLedger struct {
	mock.Mock
}

// MockCreditLedgerExpecter registers expectations on MockCreditLedger
type MockCreditLedgerExpecter struct {
	mock *mock.Mock
}

// NewMockCreditLedger creates a MockCreditLedger whose expectations are asserted on cleanup
func NewMockCreditLedger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreditLedger {
	m := &MockCreditLedger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreditLedger) EXPECT() *MockCreditLedgerExpecter {
	return &MockCreditLedgerExpecter{mock: &m.Mock}
}

func (m *MockCreditLedger) SettleBooking(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *MockCreditLedger) SettleCancellation(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (e *MockCreditLedgerExpecter) SettleBooking(ctx, appointment any) *mock.Call {
	return e.mock.On("SettleBooking", ctx, appointment)
}

func (e *MockCreditLedgerExpecter) SettleCancellation(ctx, appointment any) *mock.Call {
	return e.mock.On("SettleCancellation", ctx, appointment)
}
