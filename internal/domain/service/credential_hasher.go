// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// CredentialHasher defines one-way hashing and verification of user credentials.
// Implementations mix in a per-deployment server secret and a per-call salt, and
// return self-describing hashes so they can be verified after defaults change.
type CredentialHasher interface {
	// Hash generates a salted, algorithm-tagged hash from a plaintext secret.
	Hash(ctx context.Context, secret string) (string, error)

	// Verify reports whether candidate matches storedHash. A mismatch is
	// (false, nil); an error means the hash could not be evaluated.
	Verify(ctx context.Context, storedHash, candidate string) (bool, error)
}
