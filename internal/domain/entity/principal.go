package entity

import coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"

// Principal is an authenticated caller: the stored user plus the claims of its session
type Principal struct {
	User   *User
	Claims *coreport.IdentityClaims
}

// ID returns the stored user identifier
func (p *Principal) ID() string {
	return p.User.ID
}

// Role returns the stored user role
func (p *Principal) Role() Role {
	return p.User.Role
}
