package service

import (
	"time"

	"todo/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claimable is the capability set a claims shape must provide to be issued
// and verified by a claims codec: it is built from an identity, serializes as
// JWT claims, and exposes the user it was issued for.
type Claimable[T any] interface {
	*T
	jwt.Claims
	FromIdentity(identity *entity.Identity, expiresAt time.Time)
	DecodedUser() (*entity.DecodedUser, error)
}

// Claims is the default payload: {"email": ..., "id": ..., "exp": ...}.
type Claims struct {
	Email string `json:"email" validate:"required,email"`
	ID    string `json:"id" validate:"required,uuid"`
	jwt.RegisteredClaims
}

// FromIdentity fills the claims for identity, expiring at expiresAt.
func (c *Claims) FromIdentity(identity *entity.Identity, expiresAt time.Time) {
	c.Email = identity.Email
	c.ID = identity.ID.String()
	c.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

// DecodedUser returns the request identity carried by the claims.
func (c *Claims) DecodedUser() (*entity.DecodedUser, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, err
	}

	return &entity.DecodedUser{ID: id, Email: c.Email}, nil
}

// TokenIssuer issues signed tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(identity *entity.Identity) (string, error)
}

// TokenVerifier verifies the raw value of an Authorization header and
// returns the user the token was issued for.
type TokenVerifier interface {
	VerifyUser(header string) (*entity.DecodedUser, error)
}
