package core

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a testify mock for coreport.TimeProvider
type MockTimeProvider struct {
	mock.Mock
}

// MockTimeProviderExpecter registers expectations on MockTimeProvider
type MockTimeProviderExpecter struct {
	mock *mock.Mock
}

// NewMockTimeProvider creates a MockTimeProvider whose expectations are asserted on cleanup
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// NewFixedTimeProvider returns a MockTimeProvider frozen at now
func NewFixedTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}, now time.Time) *MockTimeProvider {
	m := NewMockTimeProvider(t)
	m.EXPECT().Now().Return(now).Maybe()
	return m
}

func (m *MockTimeProvider) EXPECT() *MockTimeProviderExpecter {
	return &MockTimeProviderExpecter{mock: &m.Mock}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	return m.Called(t).Get(0).(coreport.Duration)
}

func (m *MockTimeProvider) Sleep(d coreport.Duration) {
	m.Called(d)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	ret := m.Called(ctx, timeout)
	return ret.Get(0).(context.Context), ret.Get(1).(context.CancelFunc)
}

func (e *MockTimeProviderExpecter) Now() *mock.Call {
	return e.mock.On("Now")
}

func (e *MockTimeProviderExpecter) Since(t any) *mock.Call {
	return e.mock.On("Since", t)
}

func (e *MockTimeProviderExpecter) Sleep(d any) *mock.Call {
	return e.mock.On("Sleep", d)
}

func (e *MockTimeProviderExpecter) WithTimeout(ctx, timeout any) *mock.Call {
	return e.mock.On("WithTimeout", ctx, timeout)
}
