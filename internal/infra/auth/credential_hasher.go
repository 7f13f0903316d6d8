package auth

import (
	"context"
	"runtime"
	"time"

	"todo/config"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/infra/metrics"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// algorithmHasher is a CredentialHasher bound to one algorithm.
type algorithmHasher interface {
	service.CredentialHasher

	// Recognizes reports whether storedHash was produced by this algorithm.
	Recognizes(storedHash string) bool
}

// NewCredentialHasher builds the hasher selected by auth.hashAlgorithm. Stored
// hashes of every supported algorithm remain verifiable, and computations are
// bounded to auth.hashWorkers concurrent slots.
func NewCredentialHasher(cfg *config.Config) (service.CredentialHasher, error) {
	if cfg.SecretKey.Server == "" {
		return nil, errors.New("server secret must be provided")
	}

	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{HashAlgorithm: config.HashAlgorithmArgon2id}
	}

	argon, err := NewArgon2Hasher(cfg.SecretKey.Server, authCfg.Argon2)
	if err != nil {
		return nil, err
	}
	bcryptH := NewBcryptHasher(cfg.SecretKey.Server, authCfg.BcryptCost)

	var primary algorithmHasher
	switch authCfg.HashAlgorithm {
	case config.HashAlgorithmArgon2id, "":
		primary = argon
	case config.HashAlgorithmBcrypt:
		primary = bcryptH
	default:
		return nil, errors.Errorf("unsupported hash algorithm %q", authCfg.HashAlgorithm)
	}

	hasher := &multiHasher{
		primary:    primary,
		algorithms: []algorithmHasher{argon, bcryptH},
	}

	return newPooledHasher(hasher, authCfg.HashWorkers), nil
}

// multiHasher hashes with the primary algorithm and verifies with whichever
// algorithm produced the stored hash.
type multiHasher struct {
	primary    algorithmHasher
	algorithms []algorithmHasher
}

func (h *multiHasher) Hash(ctx context.Context, secret string) (string, error) {
	return h.primary.Hash(ctx, secret)
}

func (h *multiHasher) Verify(ctx context.Context, storedHash, candidate string) (bool, error) {
	for _, algorithm := range h.algorithms {
		if algorithm.Recognizes(storedHash) {
			return algorithm.Verify(ctx, storedHash, candidate)
		}
	}

	return false, domainerrors.ErrHashingFailure.WithDetails("unrecognized hash format")
}

// pooledHasher runs hash computations on a bounded number of slots so a burst
// of logins cannot starve unrelated requests of CPU.
type pooledHasher struct {
	next service.CredentialHasher
	sem  *semaphore.Weighted
}

func newPooledHasher(next service.CredentialHasher, workers int) *pooledHasher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &pooledHasher{
		next: next,
		sem:  semaphore.NewWeighted(int64(workers)),
	}
}

func (p *pooledHasher) Hash(ctx context.Context, secret string) (string, error) {
	var hash string
	err := p.run(ctx, "hash", func(ctx context.Context) error {
		var err error
		hash, err = p.next.Hash(ctx, secret)

		return err
	})

	return hash, err
}

func (p *pooledHasher) Verify(ctx context.Context, storedHash, candidate string) (bool, error) {
	var ok bool
	err := p.run(ctx, "verify", func(ctx context.Context) error {
		var err error
		ok, err = p.next.Verify(ctx, storedHash, candidate)

		return err
	})

	return ok, err
}

// run waits for a slot while ctx allows; once acquired the computation runs
// to completion.
func (p *pooledHasher) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "failed to acquire hashing slot")
	}
	defer p.sem.Release(1)

	metrics.CredentialHashInFlight.Inc()
	defer metrics.CredentialHashInFlight.Dec()

	start := time.Now()
	err := fn(context.WithoutCancel(ctx))
	metrics.CredentialHashDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	return err
}
