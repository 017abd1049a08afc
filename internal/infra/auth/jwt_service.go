package auth

import (
	"crypto/rsa"
	"log/slog"
	"maps"
	"time"

	"lodging/config"
	"lodging/internal/domain/service"
	"lodging/internal/errors"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = time.Hour

// registeredClaims cannot be overridden through extra claims.
var registeredClaims = []string{"sub", "iat", "exp", "iss", "nbf"}

// jwtService is a concrete implementation of the TokenService interface
// signing RS256 tokens with a single RSA key.
type jwtService struct {
	key    *rsa.PrivateKey
	keyID  string
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It loads or generates the signing key according to the auth configuration.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	key, err := LoadSigningKey(cfg, logger)
	if err != nil {
		return nil, err
	}

	ttl, issuer := defaultTokenTTL, ""
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return newJWTService(key, ttl, issuer)
}

func newJWTService(key *rsa.PrivateKey, ttl time.Duration, issuer string) (*jwtService, error) {
	if key == nil {
		return nil, errors.New("signing key must be provided")
	}

	kid, err := keyID(&key.PublicKey)
	if err != nil {
		return nil, err
	}

	return &jwtService{
		key:    key,
		keyID:  kid,
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a token for subject carrying the extra claims.
func (s *jwtService) Issue(subject string, extraClaims map[string]any, validity time.Duration) (*service.IssuedToken, error) {
	if validity <= 0 {
		validity = s.ttl
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(validity)

	claims := make(jwt.MapClaims, len(extraClaims)+4)
	maps.Copy(claims, extraClaims)
	for _, name := range registeredClaims {
		delete(claims, name)
	}
	claims["sub"] = subject
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = expiresAt.Unix()
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken parses the token, accepting only RS256 signatures from our key.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return &s.key.PublicKey, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// DefaultTTL returns the configured token validity.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.ttl
}

// PublicKeySet returns the JWKS holding the verification key.
func (s *jwtService) PublicKeySet() jose.JSONWebKeySet {
	return jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{{
			Key:       &s.key.PublicKey,
			KeyID:     s.keyID,
			Algorithm: string(jose.RS256),
			Use:       "sig",
		}},
	}
}
