package auth

import (
	"context"
	"encoding/base64"
	"strings"

	domainerrors "todo/internal/domain/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// bcryptHasher hashes the peppered secret with bcrypt. The pepper is
// base64-encoded so the input stays well under bcrypt's 72-byte limit.
type bcryptHasher struct {
	serverSecret []byte
	cost         int
}

// NewBcryptHasher creates a bcrypt hasher with the given cost.
func NewBcryptHasher(serverSecret string, cost int) *bcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		serverSecret: []byte(serverSecret),
		cost:         cost,
	}
}

func (h *bcryptHasher) Recognizes(storedHash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(storedHash, prefix) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) Hash(_ context.Context, secret string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword(h.peppered(secret), h.cost)
	if err != nil {
		return "", domainerrors.ErrHashingFailure.WithCause(err)
	}

	return string(hashedBytes), nil
}

func (h *bcryptHasher) Verify(_ context.Context, storedHash, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), h.peppered(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, domainerrors.ErrHashingFailure.WithCause(err)
}

func (h *bcryptHasher) peppered(secret string) []byte {
	return []byte(base64.StdEncoding.EncodeToString(pepper(h.serverSecret, secret)))
}
