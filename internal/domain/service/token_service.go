package service

import (
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

// Claim names added on top of the registered claims.
const (
	ClaimScope      = "scope"
	ClaimCustomerID = "cid"
)

// Claims defines the claims carried by an access token.
type Claims struct {
	Scope      string `json:"scope,omitempty"`
	CustomerID string `json:"cid,omitempty"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed token plus its lifetime. It is never persisted.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiresIn returns the validity in whole seconds.
func (t *IssuedToken) ExpiresIn() int64 {
	return int64(t.ExpiresAt.Sub(t.IssuedAt).Seconds())
}

// TokenService signs and verifies access tokens with an asymmetric key pair.
type TokenService interface {
	// Issue signs a token for subject. A zero validity falls back to DefaultTTL.
	Issue(subject string, extraClaims map[string]any, validity time.Duration) (*IssuedToken, error)

	// ValidateToken verifies signature, algorithm and expiry.
	ValidateToken(tokenString string) (*Claims, error)

	// DefaultTTL returns the validity applied when none is requested.
	DefaultTTL() time.Duration

	// PublicKeySet exposes the verification key for third parties.
	PublicKeySet() jose.JSONWebKeySet
}
