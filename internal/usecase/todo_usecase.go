package usecase

import (
	"context"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput defines the data required to create a todo.
type CreateTodoInput struct {
	Title string
}

// TodoUsecase defines the interface for todo management use cases.
// Mutations take the raw todo ID so ownership checks see exactly what the caller sent.
type TodoUsecase interface {
	// ListTodos returns the user's todos, completed first.
	ListTodos(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error)

	// CreateTodo adds a todo owned by the user.
	CreateTodo(ctx context.Context, userID uuid.UUID, input *CreateTodoInput) (*entity.Todo, error)

	// RenameTodo changes the title of an owned todo.
	RenameTodo(ctx context.Context, userID uuid.UUID, todoID, title string) (*entity.Todo, error)

	// CompleteTodo marks an owned todo as completed.
	CompleteTodo(ctx context.Context, userID uuid.UUID, todoID string) (*entity.Todo, error)

	// IncompleteTodo marks an owned todo as not completed.
	IncompleteTodo(ctx context.Context, userID uuid.UUID, todoID string) (*entity.Todo, error)

	// DeleteTodo removes an owned todo.
	DeleteTodo(ctx context.Context, userID uuid.UUID, todoID string) error
}
