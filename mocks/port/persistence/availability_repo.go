package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockAvailabilityRepository is a testify mock for persistence.AvailabilityRepository
type MockAvailabilityRepository struct {
	mock.Mock
}

// MockAvailabilityRepositoryExpecter registers expectations on MockAvailabilityRepository
type MockAvailabilityRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockAvailabilityRepository creates a mock whose expectations are asserted on cleanup
func NewMockAvailabilityRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAvailabilityRepository {
	m := &MockAvailabilityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAvailabilityRepository) EXPECT() *MockAvailabilityRepositoryExpecter {
	return &MockAvailabilityRepositoryExpecter{mock: &m.Mock}
}

func (m *MockAvailabilityRepository) Create(ctx context.Context, slot *entity.Availability) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *MockAvailabilityRepository) GetByID(ctx context.Context, id string) (*entity.Availability, error) {
	ret := m.Called(ctx, id)
	slot, _ := ret.Get(0).(*entity.Availability)
	return slot, ret.Error(1)
}

func (m *MockAvailabilityRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Availability, error) {
	ret := m.Called(ctx, id)
	slot, _ := ret.Get(0).(*entity.Availability)
	return slot, ret.Error(1)
}

func (m *MockAvailabilityRepository) Update(ctx context.Context, slot *entity.Availability) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *MockAvailabilityRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*entity.Availability, error) {
	ret := m.Called(ctx, doctorID)
	slots, _ := ret.Get(0).([]*entity.Availability)
	return slots, ret.Error(1)
}

func (m *MockAvailabilityRepository) ListOpenByDoctor(ctx context.Context, doctorID string) ([]*entity.Availability, error) {
	ret := m.Called(ctx, doctorID)
	slots, _ := ret.Get(0).([]*entity.Availability)
	return slots, ret.Error(1)
}

func (m *MockAvailabilityRepository) DeleteUnbound(ctx context.Context, doctorID string, ids []string) (int64, error) {
	ret := m.Called(ctx, doctorID, ids)
	return ret.Get(0).(int64), ret.Error(1)
}

func (e *MockAvailabilityRepositoryExpecter) Create(ctx, slot any) *mock.Call {
	return e.mock.On("Create", ctx, slot)
}

func (e *MockAvailabilityRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (e *MockAvailabilityRepositoryExpecter) GetByIDForUpdate(ctx, id any) *mock.Call {
	return e.mock.On("GetByIDForUpdate", ctx, id)
}

func (e *MockAvailabilityRepositoryExpecter) Update(ctx, slot any) *mock.Call {
	return e.mock.On("Update", ctx, slot)
}

func (e *MockAvailabilityRepositoryExpecter) ListByDoctor(ctx, doctorID any) *mock.Call {
	return e.mock.On("ListByDoctor", ctx, doctorID)
}

func (e *MockAvailabilityRepositoryExpecter) ListOpenByDoctor(ctx, doctorID any) *mock.Call {
	return e.mock.On("ListOpenByDoctor", ctx, doctorID)
}

func (e *MockAvailabilityRepositoryExpecter) DeleteUnbound(ctx, doctorID, ids any) *mock.Call {
	return e.mock.On("DeleteUnbound", ctx, doctorID, ids)
}
