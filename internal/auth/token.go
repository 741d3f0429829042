// Package auth provides the stateless token service and password hashing.
// Tokens are HS256-signed JWTs carrying the caller's identity claims; expiry
// is the only invalidation mechanism, there is no server-side session store.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/teamwell/taskman/internal/domain"
)

// Token verification failures. These are distinguished for diagnostics and
// logging only; callers surface them uniformly as invalid credentials.
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenSignature = errors.New("token signature does not match")
	ErrTokenMalformed = errors.New("token is malformed")
)

// Principal is the thin identity shape the token layer works with,
// decoupled from the persisted User record.
type Principal struct {
	UserID string
	Email  string
	Role   domain.Role
}

// NewPrincipal builds a Principal from a user record.
func NewPrincipal(u *domain.User) Principal {
	return Principal{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// Claims are the JWT claims embedded in issued tokens. The subject is the
// user's email, the canonical principal name.
type Claims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given symmetric signing key
// and token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a new token for the principal with an issued-at timestamp and
// an absolute expiry one TTL window from now.
func (s *TokenService) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: p.UserID,
		Role:   p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded principal.
// Failure reasons are reported as ErrTokenExpired, ErrTokenSignature or
// ErrTokenMalformed.
func (s *TokenService) Verify(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Principal{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Principal{}, ErrTokenSignature
		default:
			return Principal{}, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, ErrTokenMalformed
	}
	if claims.Subject == "" || claims.UserID == "" {
		return Principal{}, ErrTokenMalformed
	}

	return Principal{
		UserID: claims.UserID,
		Email:  claims.Subject,
		Role:   claims.Role,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
