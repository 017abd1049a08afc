package auth

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lodging/config"
	"lodging/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	key, err := GenerateKey(2048)
	require.NoError(t, err)

	svc, err := newJWTService(key, time.Hour, "lodging-test")
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	issued, err := svc.Issue("ana", map[string]any{
		service.ClaimScope:      "customer",
		service.ClaimCustomerID: "c-1",
	}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, int64(3600), issued.ExpiresIn())

	claims, err := svc.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Subject)
	assert.Equal(t, "customer", claims.Scope)
	assert.Equal(t, "c-1", claims.CustomerID)
	assert.Equal(t, "lodging-test", claims.Issuer)
	assert.Equal(t, issued.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_CustomValidity(t *testing.T) {
	svc := newTestJWTService(t)

	issued, err := svc.Issue("ana", nil, 5*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, int64(300), issued.ExpiresIn())
}

func TestJWTService_ExtraClaimsCannotOverrideRegistered(t *testing.T) {
	svc := newTestJWTService(t)

	issued, err := svc.Issue("ana", map[string]any{"sub": "admin", "exp": 4102444800}, 0)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Subject)
	assert.Equal(t, issued.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	issued, err := svc.Issue("ana", nil, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.ValidateToken(issued.Token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignatures(t *testing.T) {
	svc := newTestJWTService(t)
	other := newTestJWTService(t)

	foreign, err := other.Issue("ana", nil, 0)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign.Token)
	assert.Error(t, err)

	hmac := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ana",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iss": "lodging-test",
	})
	signed, err := hmac.SignedString([]byte("shared-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)

	_, err = svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_PublicKeySet(t *testing.T) {
	svc := newTestJWTService(t)

	set := svc.PublicKeySet()
	require.Len(t, set.Keys, 1)
	assert.Equal(t, svc.keyID, set.Keys[0].KeyID)
	assert.True(t, set.Keys[0].IsPublic())

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kty":"RSA"`)
	assert.NotContains(t, string(raw), `"d":`)

	issued, err := svc.Issue("ana", nil, 0)
	require.NoError(t, err)
	parsed, _, err := jwt.NewParser().ParseUnverified(issued.Token, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, svc.keyID, parsed.Header["kid"])
}

func TestLoadSigningKey(t *testing.T) {
	t.Run("production without key fails", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{}}
		cfg.Env.Env = config.EnvProduction

		_, err := LoadSigningKey(cfg, discardLogger())
		assert.ErrorIs(t, err, ErrSigningKeyRequired)
	})

	t.Run("development generates ephemeral key", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{KeyBits: 1024}}
		cfg.Env.Env = "development"

		key, err := LoadSigningKey(cfg, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, 2048, key.N.BitLen())
	})

	t.Run("loads persisted pem", func(t *testing.T) {
		key, err := GenerateKey(2048)
		require.NoError(t, err)
		pemBytes, err := EncodePrivateKeyPEM(key)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "signing.pem")
		require.NoError(t, os.WriteFile(path, pemBytes, 0o600))

		cfg := &config.Config{Auth: &config.AuthConfig{PrivateKeyPath: path}}
		cfg.Env.Env = config.EnvProduction

		loaded, err := LoadSigningKey(cfg, discardLogger())
		require.NoError(t, err)
		assert.True(t, key.Equal(loaded))
	})

	t.Run("rejects garbage pem", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.pem")
		require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))

		cfg := &config.Config{Auth: &config.AuthConfig{PrivateKeyPath: path}}

		_, err := LoadSigningKey(cfg, discardLogger())
		assert.Error(t, err)
	})
}
