package auth

import (
	"encoding/json"
	"strings"
	"time"

	"todo/config"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// TokenTTL is the lifetime of every issued token.
	TokenTTL = 24 * time.Hour

	bearerPrefix = "Bearer "
)

var signingMethod = jwt.SigningMethodHS256

// ClaimsCodec signs and verifies tokens carrying claims of shape T.
// It holds only immutable state and is safe for concurrent use.
type ClaimsCodec[T any, PT service.Claimable[T]] struct {
	signingKey []byte
	now        func() time.Time
	parser     *jwt.Parser
	validate   *validator.Validate
}

// AccessCodec is the codec for the default access token claims.
type AccessCodec = ClaimsCodec[service.Claims, *service.Claims]

// CodecOption customizes a ClaimsCodec.
type CodecOption func(*codecOptions)

type codecOptions struct {
	now func() time.Time
}

// WithClock replaces the wall clock used for issuance and expiry checks.
func WithClock(now func() time.Time) CodecOption {
	return func(o *codecOptions) {
		o.now = now
	}
}

// NewClaimsCodec creates a codec signing with HS256 under signingKey.
func NewClaimsCodec[T any, PT service.Claimable[T]](signingKey string, opts ...CodecOption) (*ClaimsCodec[T, PT], error) {
	if signingKey == "" {
		return nil, errors.New("token signing key must be provided")
	}

	options := codecOptions{now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}

	return &ClaimsCodec[T, PT]{
		signingKey: []byte(signingKey),
		now:        options.now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signingMethod.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(options.now),
		),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// NewAccessCodec creates the codec for access tokens from configuration.
func NewAccessCodec(cfg *config.Config) (*AccessCodec, error) {
	return NewClaimsCodec[service.Claims](cfg.SecretKey.Signing)
}

// Issue builds claims for identity expiring TokenTTL from now and signs them.
func (c *ClaimsCodec[T, PT]) Issue(identity *entity.Identity) (string, error) {
	claims := PT(new(T))
	claims.FromIdentity(identity, c.now().Add(TokenTTL))

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.signingKey)
	if err != nil {
		return "", domainerrors.ErrSigningFailure.WithCause(err)
	}

	return token, nil
}

// Verify checks the signature and expiry of a token, optionally prefixed with
// "Bearer ", and decodes its verified payload into PT.
func (c *ClaimsCodec[T, PT]) Verify(header string) (PT, error) {
	if !isVisibleASCII(header) {
		return nil, domainerrors.ErrInvalidAuthorizationHeader
	}

	tokenString := strings.TrimPrefix(header, bearerPrefix)

	// Signature and exp are checked on a generic map first; nothing in the
	// payload is decoded into PT until the token is known to be authentic.
	verified := jwt.MapClaims{}
	if _, err := c.parser.ParseWithClaims(tokenString, verified, c.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WithCause(err)
		}

		return nil, domainerrors.ErrInvalidToken.WithCause(err)
	}

	payload, err := json.Marshal(verified)
	if err != nil {
		return nil, domainerrors.ErrClaimsShapeMismatch.WithCause(err)
	}

	claims := PT(new(T))
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, domainerrors.ErrClaimsShapeMismatch.WithCause(err)
	}
	if err := c.validate.Struct(claims); err != nil {
		return nil, domainerrors.ErrClaimsShapeMismatch.WithCause(err)
	}

	return claims, nil
}

// VerifyUser verifies header and returns the user the token was issued for.
func (c *ClaimsCodec[T, PT]) VerifyUser(header string) (*entity.DecodedUser, error) {
	claims, err := c.Verify(header)
	if err != nil {
		return nil, err
	}

	user, err := claims.DecodedUser()
	if err != nil {
		return nil, domainerrors.ErrClaimsShapeMismatch.WithCause(err)
	}

	return user, nil
}

func (c *ClaimsCodec[T, PT]) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != signingMethod.Alg() {
		return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return c.signingKey, nil
}

// isVisibleASCII reports whether s is a valid header value: visible ASCII,
// space, or horizontal tab.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '\t' && (b < 0x20 || b > 0x7e) {
			return false
		}
	}

	return true
}
