package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxTitleLength = 255

// todoService implements the TodoUsecase interface.
type todoService struct {
	txManager repository.TransactionManager
	todoRepo  repository.TodoRepository
	guard     service.OwnershipGuard
	logger    *slog.Logger
}

// TodoServiceParams holds dependencies for TodoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TodoRepo  repository.TodoRepository
	Guard     service.OwnershipGuard
	Logger    *slog.Logger
}

// NewTodoService creates a new todo service.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		txManager: params.TxManager,
		todoRepo:  params.TodoRepo,
		guard:     params.Guard,
		logger:    params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTodos returns the user's todos, completed first.
func (srv *todoService) ListTodos(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// CreateTodo adds a todo owned by the user.
func (srv *todoService) CreateTodo(ctx context.Context, userID uuid.UUID, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	todo := &entity.Todo{
		Title:  title,
		UserID: userID,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to create todo", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Debug("Todo created", slog.Any("userID", userID), slog.Any("todoID", todo.ID))

	return todo, nil
}

// RenameTodo changes the title of an owned todo.
func (srv *todoService) RenameTodo(ctx context.Context, userID uuid.UUID, todoID, title string) (*entity.Todo, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	return srv.mutate(ctx, userID, todoID, func(repo repository.TodoRepository, id uuid.UUID) error {
		return repo.UpdateTitle(ctx, id, title)
	})
}

// CompleteTodo marks an owned todo as completed.
func (srv *todoService) CompleteTodo(ctx context.Context, userID uuid.UUID, todoID string) (*entity.Todo, error) {
	return srv.mutate(ctx, userID, todoID, func(repo repository.TodoRepository, id uuid.UUID) error {
		return repo.SetCompleted(ctx, id, true)
	})
}

// IncompleteTodo marks an owned todo as not completed.
func (srv *todoService) IncompleteTodo(ctx context.Context, userID uuid.UUID, todoID string) (*entity.Todo, error) {
	return srv.mutate(ctx, userID, todoID, func(repo repository.TodoRepository, id uuid.UUID) error {
		return repo.SetCompleted(ctx, id, false)
	})
}

// DeleteTodo removes an owned todo.
func (srv *todoService) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID string) error {
	if err := srv.guard.VerifyOwner(ctx, todoID, userID.String()); err != nil {
		srv.log(ctx).Warn("Todo ownership check failed", slog.Any("userID", userID), slog.String("todoID", todoID), slog.Any("error", err))

		return err
	}

	id := uuid.MustParse(todoID)
	if err := srv.todoRepo.Delete(ctx, id); err != nil {
		return translateTodoErr(err, "failed to delete todo")
	}

	srv.log(ctx).Debug("Todo deleted", slog.Any("userID", userID), slog.Any("todoID", id))

	return nil
}

// mutate runs the ownership check, applies the change and reloads the todo
// in one transaction.
func (srv *todoService) mutate(
	ctx context.Context,
	userID uuid.UUID,
	todoID string,
	apply func(repo repository.TodoRepository, id uuid.UUID) error,
) (*entity.Todo, error) {
	if err := srv.guard.VerifyOwner(ctx, todoID, userID.String()); err != nil {
		srv.log(ctx).Warn("Todo ownership check failed", slog.Any("userID", userID), slog.String("todoID", todoID), slog.Any("error", err))

		return nil, err
	}

	// VerifyOwner has already rejected malformed IDs.
	id := uuid.MustParse(todoID)

	var updated *entity.Todo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.TodoRepo()

		if err := apply(repo, id); err != nil {
			return translateTodoErr(err, "failed to update todo")
		}

		var findErr error
		updated, findErr = repo.FindByID(ctx, id)
		if findErr != nil {
			return translateTodoErr(findErr, "failed to reload todo")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func translateTodoErr(err error, message string) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return domainerrors.ErrTodoNotFound
	}

	return errors.Wrap(err, message)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	n := utf8.RuneCountInString(title)
	if n == 0 || n > maxTitleLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("title must be between 1 and 255 characters")
	}

	return title, nil
}
