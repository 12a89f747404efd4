package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockPrincipalUseCase is a testify mock for usecase.PrincipalUseCase
type MockPrincipalUseCase struct {
	mock.Mock
}

// MockPrincipalUseCaseExpecter registers expectations on MockPrincipalUseCase
type MockPrincipalUseCaseExpecter struct {
	mock *mock.Mock
}

// NewMockPrincipalUseCase creates a MockPrincipalUseCase whose expectations are asserted on cleanup
func NewMockPrincipalUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPrincipalUseCase {
	m := &MockPrincipalUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPrincipalUseCase) EXPECT() *MockPrincipalUseCaseExpecter {
	return &MockPrincipalUseCaseExpecter{mock: &m.Mock}
}

func (m *MockPrincipalUseCase) Resolve(ctx context.Context, token string) (*entity.Principal, error) {
	ret := m.Called(ctx, token)
	principal, _ := ret.Get(0).(*entity.Principal)
	return principal, ret.Error(1)
}

func (m *MockPrincipalUseCase) CurrentPlan(ctx context.Context, principal *entity.Principal) (entity.Plan, bool) {
	ret := m.Called(ctx, principal)
	plan, _ := ret.Get(0).(entity.Plan)
	return plan, ret.Bool(1)
}

func (m *MockPrincipalUseCase) SyncUser(ctx context.Context, token string) (*entity.User, error) {
	ret := m.Called(ctx, token)
	user, _ := ret.Get(0).(*entity.User)
	return user, ret.Error(1)
}

func (e *MockPrincipalUseCaseExpecter) Resolve(ctx, token any) *mock.Call {
	return e.mock.On("Resolve", ctx, token)
}

func (e *MockPrincipalUseCaseExpecter) CurrentPlan(ctx, principal any) *mock.Call {
	return e.mock.On("CurrentPlan", ctx, principal)
}

func (e *MockPrincipalUseCaseExpecter) SyncUser(ctx, token any) *mock.Call {
	return e.mock.On("SyncUser", ctx, token)
}
