package usecase

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockAppointmentUseCase is a testify mock for usecase.AppointmentUseCase
type MockAppointmentUseCase struct {
	mock.Mock
}

// MockAppointmentUseCaseExpecter registers expectations on MockAppointmentUseCase
type MockAppointmentUseCaseExpecter struct {
	mock *mock.Mock
}

// NewMockAppointmentUseCase creates a MockAppointmentUseCase whose expectations are asserted on cleanup
func NewMockAppointmentUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAppointmentUseCase {
	m := &MockAppointmentUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAppointmentUseCase) EXPECT() *MockAppointmentUseCaseExpecter {
	return &MockAppointmentUseCaseExpecter{mock: &m.Mock}
}

func (m *MockAppointmentUseCase) appointment(ret mock.Arguments) (*entity.Appointment, error) {
	a, _ := ret.Get(0).(*entity.Appointment)
	return a, ret.Error(1)
}

func (m *MockAppointmentUseCase) appointments(ret mock.Arguments) ([]*entity.Appointment, error) {
	list, _ := ret.Get(0).([]*entity.Appointment)
	return list, ret.Error(1)
}

func (m *MockAppointmentUseCase) BookAppointment(ctx context.Context, patient *entity.User, slotID, description string) (*entity.Appointment, error) {
	return m.appointment(m.Called(ctx, patient, slotID, description))
}

func (m *MockAppointmentUseCase) CancelAppointment(ctx context.Context, actor *entity.User, appointmentID string) (*entity.Appointment, error) {
	return m.appointment(m.Called(ctx, actor, appointmentID))
}

func (m *MockAppointmentUseCase) MarkCompleted(ctx context.Context, doctor *entity.User, appointmentID string) (*entity.Appointment, error) {
	return m.appointment(m.Called(ctx, doctor, appointmentID))
}

func (m *MockAppointmentUseCase) AddNotes(ctx context.Context, doctor *entity.User, appointmentID, text string) (*entity.Appointment, error) {
	return m.appointment(m.Called(ctx, doctor, appointmentID, text))
}

func (m *MockAppointmentUseCase) ListUpcoming(ctx context.Context, doctor *entity.User) ([]*entity.Appointment, error) {
	return m.appointments(m.Called(ctx, doctor))
}

func (m *MockAppointmentUseCase) ListForPatient(ctx context.Context, patient *entity.User) ([]*entity.Appointment, error) {
	return m.appointments(m.Called(ctx, patient))
}

func (e *MockAppointmentUseCaseExpecter) BookAppointment(ctx, patient, slotID, description any) *mock.Call {
	return e.mock.On("BookAppointment", ctx, patient, slotID, description)
}

func (e *MockAppointmentUseCaseExpecter) CancelAppointment(ctx, actor, appointmentID any) *mock.Call {
	return e.mock.On("CancelAppointment", ctx, actor, appointmentID)
}

func (e *MockAppointmentUseCaseExpecter) MarkCompleted(ctx, doctor, appointmentID any) *mock.Call {
	return e.mock.On("MarkCompleted", ctx, doctor, appointmentID)
}

func (e *MockAppointmentUseCaseExpecter) AddNotes(ctx, doctor, appointmentID, text any) *mock.Call {
	return e.mock.On("AddNotes", ctx, doctor, appointmentID, text)
}

func (e *MockAppointmentUseCaseExpecter) ListUpcoming(ctx, doctor any) *mock.Call {
	return e.mock.On("ListUpcoming", ctx, doctor)
}

func (e *MockAppointmentUseCaseExpecter) ListForPatient(ctx, patient any) *mock.Call {
	return e.mock.On("ListForPatient", ctx, patient)
}
