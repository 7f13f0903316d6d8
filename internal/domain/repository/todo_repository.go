package repository

import (
	"context"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTodoNotFound is returned when no todo matches the lookup.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the interface for todo-related database operations.
type TodoRepository interface {
	// Create persists a new todo.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID retrieves a todo by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)

	// FindByUser lists a user's todos, completed first, then newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error)

	// CountOwned counts todos matching both id and owner. The result is 0 or 1.
	CountOwned(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// UpdateTitle renames a todo.
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error

	// SetCompleted updates the completion flag of a todo.
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error

	// Delete removes a todo.
	Delete(ctx context.Context, id uuid.UUID) error
}
