package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockAvailabilityUseCase is a testify mock for usecase.AvailabilityUseCase
type MockAvailabilityUseCase struct {
	mock.Mock
}

// MockAvailabilityUseCaseExpecter registers expectations on MockAvailabilityUseCase
type MockAvailabilityUseCaseExpecter struct {
	mock *mock.Mock
}

// NewMockAvailabilityUseCase creates a MockAvailabilityUseCase whose expectations are asserted on cleanup
func NewMockAvailabilityUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAvailabilityUseCase {
	m := &MockAvailabilityUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAvailabilityUseCase) EXPECT() *MockAvailabilityUseCaseExpecter {
	return &MockAvailabilityUseCaseExpecter{mock: &m.Mock}
}

func (m *MockAvailabilityUseCase) SetAvailabilitySlots(ctx context.Context, doctor *entity.User, start, end time.Time) (*entity.Availability, error) {
	ret := m.Called(ctx, doctor, start, end)
	slot, _ := ret.Get(0).(*entity.Availability)
	return slot, ret.Error(1)
}

func (m *MockAvailabilityUseCase) ListAvailability(ctx context.Context, doctor *entity.User) ([]*entity.Availability, error) {
	ret := m.Called(ctx, doctor)
	slots, _ := ret.Get(0).([]*entity.Availability)
	return slots, ret.Error(1)
}

func (m *MockAvailabilityUseCase) ListAvailableSlots(ctx context.Context, patient *entity.User, doctorID string) ([]*entity.Availability, error) {
	ret := m.Called(ctx, patient, doctorID)
	slots, _ := ret.Get(0).([]*entity.Availability)
	return slots, ret.Error(1)
}

func (e *MockAvailabilityUseCaseExpecter) SetAvailabilitySlots(ctx, doctor, start, end any) *mock.Call {
	return e.mock.On("SetAvailabilitySlots", ctx, doctor, start, end)
}

func (e *MockAvailabilityUseCaseExpecter) ListAvailability(ctx, doctor any) *mock.Call {
	return e.mock.On("ListAvailability", ctx, doctor)
}

func (e *MockAvailabilityUseCaseExpecter) ListAvailableSlots(ctx, patient, doctorID any) *mock.Call {
	return e.mock.On("ListAvailableSlots", ctx, patient, doctorID)
}
