package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

const principalKey = "principal"

// BearerToken extracts the session token from the Authorization header
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate resolves the bearer token to a stored user and attaches the principal
// to the request. Requests without a valid session stop here with 401.
func Authenticate(principals usecase.PrincipalUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			AbortWithError(c, logger, domainerr.ErrUnauthenticated)
			return
		}

		principal, err := principals.Resolve(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, logger, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAction lets the request through only when the principal's role allows action.
// Must run after Authenticate.
func RequireAction(action authz.Action, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			AbortWithError(c, logger, domainerr.ErrUnauthenticated)
			return
		}
		if err := authz.Require(principal.User, action); err != nil {
			AbortWithError(c, logger, err)
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the principal attached by Authenticate
func CurrentPrincipal(c *gin.Context) (*entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*entity.Principal)
	return principal, ok && principal != nil && principal.User != nil
}
