package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"todo/config"
	domainerrors "todo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(algorithm string) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Signing: "test_signing_key_very_long_for_testing",
			Server:  testServerSecret,
		},
		Auth: &config.AuthConfig{
			HashAlgorithm: algorithm,
			BcryptCost:    bcrypt.MinCost,
			Argon2:        lightArgon2,
			HashWorkers:   2,
		},
	}
}

func TestNewCredentialHasher_SelectsAlgorithm(t *testing.T) {
	ctx := context.Background()

	argonHasher, err := NewCredentialHasher(newTestConfig(config.HashAlgorithmArgon2id))
	require.NoError(t, err)
	hash, err := argonHasher.Hash(ctx, "secret123")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	bcryptH, err := NewCredentialHasher(newTestConfig(config.HashAlgorithmBcrypt))
	require.NoError(t, err)
	hash, err = bcryptH.Hash(ctx, "secret123")
	require.NoError(t, err)
	assert.Contains(t, hash, "$2a$")
}

func TestNewCredentialHasher_RejectsBadConfig(t *testing.T) {
	_, err := NewCredentialHasher(newTestConfig("md5"))
	require.Error(t, err)

	cfg := newTestConfig(config.HashAlgorithmArgon2id)
	cfg.SecretKey.Server = ""
	_, err = NewCredentialHasher(cfg)
	require.Error(t, err)

	cfg = newTestConfig(config.HashAlgorithmBcrypt)
	cfg.Auth.Argon2 = &config.Argon2Config{SaltLength: 2}
	_, err = NewCredentialHasher(cfg)
	assert.ErrorContains(t, err, "saltLength")
}

func TestCredentialHasher_VerifiesAcrossAlgorithms(t *testing.T) {
	ctx := context.Background()

	legacy, err := NewCredentialHasher(newTestConfig(config.HashAlgorithmBcrypt))
	require.NoError(t, err)
	hash, err := legacy.Hash(ctx, "secret123")
	require.NoError(t, err)

	current, err := NewCredentialHasher(newTestConfig(config.HashAlgorithmArgon2id))
	require.NoError(t, err)

	ok, err := current.Verify(ctx, hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = current.Verify(ctx, hash, "secret124")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialHasher_UnrecognizedHash(t *testing.T) {
	hasher, err := NewCredentialHasher(newTestConfig(config.HashAlgorithmArgon2id))
	require.NoError(t, err)

	ok, err := hasher.Verify(context.Background(), "plaintext-password", "plaintext-password")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailure)
}

// blockingHasher records the peak number of concurrent calls.
type blockingHasher struct {
	current atomic.Int32
	peak    atomic.Int32
	delay   time.Duration
}

func (h *blockingHasher) enter() {
	n := h.current.Add(1)
	for {
		peak := h.peak.Load()
		if n <= peak || h.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(h.delay)
	h.current.Add(-1)
}

func (h *blockingHasher) Hash(context.Context, string) (string, error) {
	h.enter()

	return "hash", nil
}

func (h *blockingHasher) Verify(context.Context, string, string) (bool, error) {
	h.enter()

	return true, nil
}

func TestPooledHasher_BoundsConcurrency(t *testing.T) {
	inner := &blockingHasher{delay: 10 * time.Millisecond}
	pool := newPooledHasher(inner, 2)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pool.Verify(context.Background(), "hash", "secret")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, inner.peak.Load(), int32(2))
	assert.Positive(t, inner.peak.Load())
}

func TestPooledHasher_CanceledWhileWaiting(t *testing.T) {
	inner := &blockingHasher{delay: 100 * time.Millisecond}
	pool := newPooledHasher(inner, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = pool.Hash(context.Background(), "secret")
	}()

	// Give the first call time to take the only slot.
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Hash(ctx, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	<-done
}
