package entity

import "github.com/google/uuid"

// Identity is the minimal authenticated-user record. It is produced by a
// successful credential check or by decoding a verified token.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// DecodedUser is the identity attached to an authenticated request.
type DecodedUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
