package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"os"

	"lodging/config"
	"lodging/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const minKeyBits = 2048

// ErrSigningKeyRequired is returned in production when no private key is configured.
var ErrSigningKeyRequired = errors.New("a persisted signing key is required in production")

// LoadSigningKey reads the configured PEM private key. Outside production a
// missing path yields an ephemeral key that dies with the process.
func LoadSigningKey(cfg *config.Config, logger *slog.Logger) (*rsa.PrivateKey, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	if authCfg.PrivateKeyPath != "" {
		raw, err := os.ReadFile(authCfg.PrivateKeyPath)
		if err != nil {
			return nil, errors.Wrap(err, "read private key")
		}

		key, err := jwt.ParseRSAPrivateKeyFromPEM(raw)
		if err != nil {
			return nil, errors.Wrap(err, "parse private key")
		}

		return key, nil
	}

	if cfg.IsProduction() {
		return nil, ErrSigningKeyRequired
	}

	logger.Warn("No private key configured, generating an ephemeral signing key",
		slog.Int("bits", authCfg.KeyBits),
	)

	return GenerateKey(authCfg.KeyBits)
}

// GenerateKey creates an RSA key of at least 2048 bits.
func GenerateKey(bits int) (*rsa.PrivateKey, error) {
	if bits < minKeyBits {
		bits = minKeyBits
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrap(err, "generate rsa key")
	}

	return key, nil
}

// EncodePrivateKeyPEM encodes key as a PKCS#8 PEM block.
func EncodePrivateKeyPEM(key *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "marshal private key")
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// keyID derives a stable key id from the public key.
func keyID(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", errors.Wrap(err, "marshal public key")
	}
	sum := sha256.Sum256(der)

	return base64.RawURLEncoding.EncodeToString(sum[:12]), nil
}
