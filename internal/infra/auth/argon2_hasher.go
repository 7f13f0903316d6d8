package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"todo/config"
	domainerrors "todo/internal/domain/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "$argon2id$"

var argon2Encoding = base64.RawStdEncoding

type argon2Params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// argon2Hasher produces PHC-formatted Argon2id hashes of the peppered secret.
type argon2Hasher struct {
	serverSecret []byte
	params       argon2Params
	random       io.Reader
}

// NewArgon2Hasher creates an Argon2id hasher. Zero fields in params fall back
// to the defaults; out-of-range values are rejected.
func NewArgon2Hasher(serverSecret string, params *config.Argon2Config) (*argon2Hasher, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid argon2 parameters")
	}

	return &argon2Hasher{
		serverSecret: []byte(serverSecret),
		params: argon2Params{
			memory:      params.Memory,
			iterations:  params.Iterations,
			parallelism: params.Parallelism,
			saltLength:  params.SaltLength,
			keyLength:   params.KeyLength,
		},
		random: rand.Reader,
	}, nil
}

func (h *argon2Hasher) Recognizes(storedHash string) bool {
	return strings.HasPrefix(storedHash, argon2idPrefix)
}

func (h *argon2Hasher) Hash(_ context.Context, secret string) (string, error) {
	salt := make([]byte, h.params.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", domainerrors.ErrHashingFailure.WithCause(err)
	}

	key := argon2.IDKey(pepper(h.serverSecret, secret), salt, h.params.iterations, h.params.memory, h.params.parallelism, h.params.keyLength)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.memory,
		h.params.iterations,
		h.params.parallelism,
		argon2Encoding.EncodeToString(salt),
		argon2Encoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(_ context.Context, storedHash, candidate string) (bool, error) {
	params, salt, key, err := decodeArgon2Hash(storedHash)
	if err != nil {
		return false, domainerrors.ErrHashingFailure.WithCause(err)
	}

	derived := argon2.IDKey(pepper(h.serverSecret, candidate), salt, params.iterations, params.memory, params.parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}

// decodeArgon2Hash parses $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>.
func decodeArgon2Hash(storedHash string) (argon2Params, []byte, []byte, error) {
	var params argon2Params

	parts := strings.Split(storedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("malformed argon2id version: %w", err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("malformed argon2id parameters: %w", err)
	}
	// Bounded so a corrupted row cannot make verification allocate unbounded memory.
	if params.memory == 0 || params.memory > config.MaxArgon2Memory ||
		params.iterations == 0 || params.iterations > config.MaxArgon2Iterations ||
		params.parallelism == 0 || params.parallelism > config.MaxArgon2Parallelism {
		return params, nil, nil, fmt.Errorf("argon2id parameters out of range")
	}

	salt, err := argon2Encoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("malformed argon2id salt: %w", err)
	}

	key, err := argon2Encoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, fmt.Errorf("malformed argon2id key")
	}

	params.saltLength = uint32(len(salt))
	params.keyLength = uint32(len(key))

	return params, salt, key, nil
}
