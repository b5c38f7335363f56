// Package auth validates the bearer tokens that identify owners. Tokens are
// issued by the identity provider in production; Issue exists for local
// development and the srsctl token command.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and validates HS256 access tokens. The subject claim is
// the owner id.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a JWT manager from the auth configuration.
func NewJWTManager(cfg config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		ttl:    cfg.AccessTokenTTL,
		now:    time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role domain.UserRole `json:"role,omitempty"`
}

// Issue creates a signed token for the owner with the given role.
func (m *JWTManager) Issue(ownerID uuid.UUID, role domain.UserRole) (string, error) {
	if ownerID == uuid.Nil {
		return "", domain.NewValidationError("owner_id", "required")
	}
	if !role.IsValid() {
		return "", domain.NewValidationError("role", "must be user or admin")
	}

	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   ownerID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token and returns the owner id and role.
// Tokens without a role claim are treated as regular users.
func (m *JWTManager) ValidateToken(_ context.Context, raw string) (uuid.UUID, string, error) {
	if raw == "" {
		return uuid.Nil, "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims accessClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, "", fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}

	role := claims.Role
	if role == "" {
		role = domain.UserRoleUser
	}
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: unknown role %q", ErrInvalidToken, role)
	}

	return ownerID, role.String(), nil
}
