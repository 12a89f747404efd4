package core

import "context"

// IdentityClaims is what the hosted identity provider asserts about a session
type IdentityClaims struct {
	Subject  string
	Email    string
	Name     string
	ImageURL string
	Plans    []string
}

// IdentityProvider resolves opaque session tokens issued by the hosted identity service
type IdentityProvider interface {
	// Authenticate validates the token and returns its claims.
	//
	// Possible errors:
	// - ErrUnauthenticated: token missing, malformed, expired or signed with another key
	Authenticate(ctx context.Context, token string) (*IdentityClaims, error)

	// HasPlan reports whether the claims carry the given subscription plan
	HasPlan(claims *IdentityClaims, plan string) bool
}
