package auth

import (
	"strings"
	"testing"

	"lodging/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-input")
	require.NoError(t, err)
	second, err := hasher.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-input", first))
	assert.True(t, hasher.Check("same-input", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 80))

	assert.Error(t, err)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)

	hash, err := hasher.Hash("password1")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.Equal(t, bcrypt.DefaultCost, newBcryptHasher(99).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
}
