package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for persistence.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// MockUserRepositoryExpecter registers expectations on MockUserRepository
type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockUserRepository creates a MockUserRepository whose expectations are asserted on cleanup
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &m.Mock}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	ret := m.Called(ctx, id)
	user, _ := ret.Get(0).(*entity.User)
	return user, ret.Error(1)
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	ret := m.Called(ctx, externalID)
	user, _ := ret.Get(0).(*entity.User)
	return user, ret.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) AdjustCredits(ctx context.Context, userID string, delta int64) (*entity.User, error) {
	ret := m.Called(ctx, userID, delta)
	user, _ := ret.Get(0).(*entity.User)
	return user, ret.Error(1)
}

func (m *MockUserRepository) ListDoctorsByVerification(ctx context.Context, status entity.VerificationStatus) ([]*entity.User, error) {
	ret := m.Called(ctx, status)
	users, _ := ret.Get(0).([]*entity.User)
	return users, ret.Error(1)
}

func (e *MockUserRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (e *MockUserRepositoryExpecter) GetByExternalID(ctx, externalID any) *mock.Call {
	return e.mock.On("GetByExternalID", ctx, externalID)
}

func (e *MockUserRepositoryExpecter) Create(ctx, user any) *mock.Call {
	return e.mock.On("Create", ctx, user)
}

func (e *MockUserRepositoryExpecter) Update(ctx, user any) *mock.Call {
	return e.mock.On("Update", ctx, user)
}

func (e *MockUserRepositoryExpecter) AdjustCredits(ctx, userID, delta any) *mock.Call {
	return e.mock.On("AdjustCredits", ctx, userID, delta)
}

func (e *MockUserRepositoryExpecter) ListDoctorsByVerification(ctx, status any) *mock.Call {
	return e.mock.On("ListDoctorsByVerification", ctx, status)
}
