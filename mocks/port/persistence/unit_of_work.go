package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock for persistence.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

// MockUnitOfWorkExpecter registers expectations on MockUnitOfWork
type MockUnitOfWorkExpecter struct {
	mock *mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork whose expectations are asserted on cleanup
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkExpecter {
	return &MockUnitOfWorkExpecter{mock: &m.Mock}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	ret := m.Called(ctx)
	txCtx, _ := ret.Get(0).(context.Context)
	return txCtx, ret.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Do returns the configured error without calling fn, or runs fn when the
// configured error is nil and returns whatever fn returns
func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.Called(ctx, fn).Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	repo, _ := m.Called(ctx).Get(0).(persistence.UserRepository)
	return repo
}

func (m *MockUnitOfWork) GetCreditTransactionRepository(ctx context.Context) persistence.CreditTransactionRepository {
	repo, _ := m.Called(ctx).Get(0).(persistence.CreditTransactionRepository)
	return repo
}

func (m *MockUnitOfWork) GetAvailabilityRepository(ctx context.Context) persistence.AvailabilityRepository {
	repo, _ := m.Called(ctx).Get(0).(persistence.AvailabilityRepository)
	return repo
}

func (m *MockUnitOfWork) GetAppointmentRepository(ctx context.Context) persistence.AppointmentRepository {
	repo, _ := m.Called(ctx).Get(0).(persistence.AppointmentRepository)
	return repo
}

func (e *MockUnitOfWorkExpecter) Begin(ctx any) *mock.Call {
	return e.mock.On("Begin", ctx)
}

func (e *MockUnitOfWorkExpecter) Commit(ctx any) *mock.Call {
	return e.mock.On("Commit", ctx)
}

func (e *MockUnitOfWorkExpecter) Rollback(ctx any) *mock.Call {
	return e.mock.On("Rollback", ctx)
}

func (e *MockUnitOfWorkExpecter) Do(ctx, fn any) *mock.Call {
	return e.mock.On("Do", ctx, fn)
}

func (e *MockUnitOfWorkExpecter) GetUserRepository(ctx any) *mock.Call {
	return e.mock.On("GetUserRepository", ctx)
}

func (e *MockUnitOfWorkExpecter) GetCreditTransactionRepository(ctx any) *mock.Call {
	return e.mock.On("GetCreditTransactionRepository", ctx)
}

func (e *MockUnitOfWorkExpecter) GetAvailabilityRepository(ctx any) *mock.Call {
	return e.mock.On("GetAvailabilityRepository", ctx)
}

func (e *MockUnitOfWorkExpecter) GetAppointmentRepository(ctx any) *mock.Call {
	return e.mock.On("GetAppointmentRepository", ctx)
}
