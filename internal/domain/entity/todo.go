package entity

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a single item in a user's list.
type Todo struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    uuid.UUID `json:"user_id"` // Owner of the item.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
