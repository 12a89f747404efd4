package core

import (
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock for coreport.Logger
type MockLogger struct {
	mock.Mock
}

// MockLoggerExpecter registers expectations on MockLogger
type MockLoggerExpecter struct {
	mock *mock.Mock
}

// NewMockLogger creates a MockLogger whose expectations are asserted on cleanup
func NewMockLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := &MockLogger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// NewPermissiveLogger returns a MockLogger that accepts any log call
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := NewMockLogger(t)
	m.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *MockLogger) EXPECT() *MockLoggerExpecter {
	return &MockLoggerExpecter{mock: &m.Mock}
}

func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() coreport.LogLevel {
	ret := m.Called()
	return ret.Get(0).(coreport.LogLevel)
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	return m.Called().Error(0)
}

func (e *MockLoggerExpecter) SetLevel(level any) *mock.Call {
	return e.mock.On("SetLevel", level)
}

func (e *MockLoggerExpecter) GetLevel() *mock.Call {
	return e.mock.On("GetLevel")
}

func (e *MockLoggerExpecter) Debug(message, fields any) *mock.Call {
	return e.mock.On("Debug", message, fields)
}

func (e *MockLoggerExpecter) Info(message, fields any) *mock.Call {
	return e.mock.On("Info", message, fields)
}

func (e *MockLoggerExpecter) Warn(message, fields any) *mock.Call {
	return e.mock.On("Warn", message, fields)
}

func (e *MockLoggerExpecter) Error(message, fields any) *mock.Call {
	return e.mock.On("Error", message, fields)
}

func (e *MockLoggerExpecter) Flush() *mock.Call {
	return e.mock.On("Flush")
}
