package auth

import (
	"context"
	"strings"
	"testing"

	domainerrors "todo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testServerSecret = "01230123012301230123012301230123"

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testServerSecret, bcrypt.MinCost)
	ctx := context.Background()

	password := "secret123"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, hasher.Recognizes(hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasher(testServerSecret, bcrypt.MinCost)
	ctx := context.Background()
	password := "secret123"

	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	// Correct password
	ok, err := hasher.Verify(ctx, hash, password)
	require.NoError(t, err)
	assert.True(t, ok)

	// Incorrect password is a plain mismatch
	ok, err = hasher.Verify(ctx, hash, "WrongPassword123!")
	require.NoError(t, err)
	assert.False(t, ok)

	// Empty password
	ok, err = hasher.Verify(ctx, hash, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(testServerSecret, bcrypt.MinCost)

	ok, err := hasher.Verify(context.Background(), "invalid_hash", "secret123")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailure)
}

func TestBcryptHasher_ServerSecretIsMixedIn(t *testing.T) {
	ctx := context.Background()
	hash, err := NewBcryptHasher(testServerSecret, bcrypt.MinCost).Hash(ctx, "secret123")
	require.NoError(t, err)

	ok, err := NewBcryptHasher("another-deployment-secret", bcrypt.MinCost).Verify(ctx, hash, "secret123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_LongSecret(t *testing.T) {
	hasher := NewBcryptHasher(testServerSecret, bcrypt.MinCost)
	ctx := context.Background()

	// Secrets sharing a 72-byte prefix must still be told apart.
	base := strings.Repeat("a", 100)
	hash, err := hasher.Hash(ctx, base+"1")
	require.NoError(t, err)

	ok, err := hasher.Verify(ctx, hash, base+"2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_InvalidCost(t *testing.T) {
	hasher := NewBcryptHasher(testServerSecret, bcrypt.MaxCost+1)

	_, err := hasher.Hash(context.Background(), "secret123")
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailure)
}
