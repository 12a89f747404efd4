package core

import (
	"context"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a testify mock for coreport.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

// MockIdentityProviderExpecter registers expectations on MockIdentityProvider
type MockIdentityProviderExpecter struct {
	mock *mock.Mock
}

// NewMockIdentityProvider creates a MockIdentityProvider whose expectations are asserted on cleanup
func NewMockIdentityProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdentityProvider) EXPECT() *MockIdentityProviderExpecter {
	return &MockIdentityProviderExpecter{mock: &m.Mock}
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, token string) (*coreport.IdentityClaims, error) {
	ret := m.Called(ctx, token)
	claims, _ := ret.Get(0).(*coreport.IdentityClaims)
	return claims, ret.Error(1)
}

func (m *MockIdentityProvider) HasPlan(claims *coreport.IdentityClaims, plan string) bool {
	return m.Called(claims, plan).Bool(0)
}

func (e *MockIdentityProviderExpecter) Authenticate(ctx, token any) *mock.Call {
	return e.mock.On("Authenticate", ctx, token)
}

func (e *MockIdentityProviderExpecter) HasPlan(claims, plan any) *mock.Call {
	return e.mock.On("HasPlan", claims, plan)
}
