package core

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockViewInvalidator is a testify mock for coreport.ViewInvalidator
type MockViewInvalidator struct {
	mock.Mock
}

// MockViewInvalidatorExpecter registers expectations on MockViewInvalidator
type MockViewInvalidatorExpecter struct {
	mock *mock.Mock
}

// NewMockViewInvalidator creates a MockViewInvalidator whose expectations are asserted on cleanup
func NewMockViewInvalidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockViewInvalidator {
	m := &MockViewInvalidator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockViewInvalidator) EXPECT() *MockViewInvalidatorExpecter {
	return &MockViewInvalidatorExpecter{mock: &m.Mock}
}

// Invalidate records paths as a single []string argument
func (m *MockViewInvalidator) Invalidate(ctx context.Context, paths ...string) error {
	return m.Called(ctx, paths).Error(0)
}

func (e *MockViewInvalidatorExpecter) Invalidate(ctx, paths any) *mock.Call {
	return e.mock.On("Invalidate", ctx, paths)
}
