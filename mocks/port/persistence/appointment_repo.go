package persistence

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockAppointmentRepository is a testify mock for persistence.AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

// MockAppointmentRepositoryExpecter registers expectations on MockAppointmentRepository
type MockAppointmentRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockAppointmentRepository creates a mock whose expectations are asserted on cleanup
func NewMockAppointmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAppointmentRepository {
	m := &MockAppointmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAppointmentRepository) EXPECT() *MockAppointmentRepositoryExpecter {
	return &MockAppointmentRepositoryExpecter{mock: &m.Mock}
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	ret := m.Called(ctx, id)
	a, _ := ret.Get(0).(*entity.Appointment)
	return a, ret.Error(1)
}

func (m *MockAppointmentRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Appointment, error) {
	ret := m.Called(ctx, id)
	a, _ := ret.Get(0).(*entity.Appointment)
	return a, ret.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *MockAppointmentRepository) ListByDoctorAndStatus(ctx context.Context, doctorID string, status entity.AppointmentStatus) ([]*entity.Appointment, error) {
	ret := m.Called(ctx, doctorID, status)
	list, _ := ret.Get(0).([]*entity.Appointment)
	return list, ret.Error(1)
}

func (m *MockAppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*entity.Appointment, error) {
	ret := m.Called(ctx, patientID)
	list, _ := ret.Get(0).([]*entity.Appointment)
	return list, ret.Error(1)
}

func (e *MockAppointmentRepositoryExpecter) Create(ctx, appointment any) *mock.Call {
	return e.mock.On("Create", ctx, appointment)
}

func (e *MockAppointmentRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (e *MockAppointmentRepositoryExpecter) GetByIDForUpdate(ctx, id any) *mock.Call {
	return e.mock.On("GetByIDForUpdate", ctx, id)
}

func (e *MockAppointmentRepositoryExpecter) Update(ctx, appointment any) *mock.Call {
	return e.mock.On("Update", ctx, appointment)
}

func (e *MockAppointmentRepositoryExpecter) ListByDoctorAndStatus(ctx, doctorID, status any) *mock.Call {
	return e.mock.On("ListByDoctorAndStatus", ctx, doctorID, status)
}

func (e *MockAppointmentRepositoryExpecter) ListByPatient(ctx, patientID any) *mock.Call {
	return e.mock.On("ListByPatient", ctx, patientID)
}
