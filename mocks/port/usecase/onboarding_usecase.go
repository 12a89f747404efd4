package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockOnboardingUseCase is a testify mock for usecase.OnboardingUseCase
type MockOnboardingUseCase struct {
	mock.Mock
}

// MockOnboardingUseCaseExpecter registers expectations on MockOnboardingUseCase
type MockOnboardingUseCaseExpecter struct {
	mock *mock.Mock
}

// NewMockOnboardingUseCase creates a MockOnboardingUseCase whose expectations are asserted on cleanup
func NewMockOnboardingUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOnboardingUseCase {
	m := &MockOnboardingUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOnboardingUseCase) EXPECT() *MockOnboardingUseCaseExpecter {
	return &MockOnboardingUseCaseExpecter{mock: &m.Mock}
}

func (m *MockOnboardingUseCase) SetUserRole(ctx context.Context, user *entity.User, req usecase.RoleRequest) (*usecase.RoleResult, error) {
	ret := m.Called(ctx, user, req)
	result, _ := ret.Get(0).(*usecase.RoleResult)
	return result, ret.Error(1)
}

func (m *MockOnboardingUseCase) Dashboard(user *entity.User) (string, error) {
	ret := m.Called(user)
	return ret.String(0), ret.Error(1)
}

func (m *MockOnboardingUseCase) ListPendingDoctors(ctx context.Context, admin *entity.User) ([]*entity.User, error) {
	ret := m.Called(ctx, admin)
	users, _ := ret.Get(0).([]*entity.User)
	return users, ret.Error(1)
}

func (m *MockOnboardingUseCase) SetDoctorVerification(ctx context.Context, admin *entity.User, doctorID string, status entity.VerificationStatus) (*entity.User, error) {
	ret := m.Called(ctx, admin, doctorID, status)
	user, _ := ret.Get(0).(*entity.User)
	return user, ret.Error(1)
}

func (e *MockOnboardingUseCaseExpecter) SetUserRole(ctx, user, req any) *mock.Call {
	return e.mock.On("SetUserRole", ctx, user, req)
}

func (e *MockOnboardingUseCaseExpecter) Dashboard(user any) *mock.Call {
	return e.mock.On("Dashboard", user)
}

func (e *MockOnboardingUseCaseExpecter) ListPendingDoctors(ctx, admin any) *mock.Call {
	return e.mock.On("ListPendingDoctors", ctx, admin)
}

func (e *MockOnboardingUseCaseExpecter) SetDoctorVerification(ctx, admin, doctorID, status any) *mock.Call {
	return e.mock.On("SetDoctorVerification", ctx, admin, doctorID, status)
}
