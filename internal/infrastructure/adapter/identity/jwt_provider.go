package identity

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
)

// SessionClaims is the payload of a session token issued by the identity service
type SessionClaims struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	ImageURL string   `json:"image_url,omitempty"`
	Plans    []string `json:"plans,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider verifies HS256 session tokens with a secret shared with the identity service
type JWTProvider struct {
	secret       []byte
	issuer       string
	leeway       time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewJWTProvider creates a token verifier. An empty issuer accepts any issuer.
func NewJWTProvider(secret, issuer string, leeway time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *JWTProvider {
	return &JWTProvider{
		secret:       []byte(secret),
		issuer:       issuer,
		leeway:       leeway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Authenticate validates the token signature, expiry and issuer and returns its claims
func (p *JWTProvider) Authenticate(_ context.Context, token string) (*coreport.IdentityClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(p.leeway),
		jwt.WithTimeFunc(p.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	}, opts...)
	if err != nil {
		p.logger.Debug("Session token rejected", map[string]any{
			"reason": rejectionReason(err),
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthenticated, rejectionReason(err))
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errs.ErrUnauthenticated
	}

	return &coreport.IdentityClaims{
		Subject:  claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: claims.ImageURL,
		Plans:    claims.Plans,
	}, nil
}

// HasPlan reports whether the claims carry the given subscription plan
func (p *JWTProvider) HasPlan(claims *coreport.IdentityClaims, plan string) bool {
	if claims == nil {
		return false
	}
	return slices.Contains(claims.Plans, plan)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token not valid yet"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "unexpected issuer"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "required claim missing"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "invalid token"
	}
}
