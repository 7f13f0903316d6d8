package impl

import (
	"context"
	"strings"
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	mockRepo "todo/internal/mocks/repository"
	mockSvc "todo/internal/mocks/service"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type todoServiceFixtures struct {
	service   usecase.TodoUsecase
	txManager *mockRepo.MockTransactionManager
	todoRepo  *mockRepo.MockTodoRepository
	guard     *mockSvc.MockOwnershipGuard
}

func createTestTodoService(t *testing.T) todoServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	todoRepo := mockRepo.NewMockTodoRepository(t)
	guard := mockSvc.NewMockOwnershipGuard(t)

	service := NewTodoService(TodoServiceParams{
		TxManager: txManager,
		TodoRepo:  todoRepo,
		Guard:     guard,
		Logger:    newDiscardLogger(),
	})

	return todoServiceFixtures{
		service:   service,
		txManager: txManager,
		todoRepo:  todoRepo,
		guard:     guard,
	}
}

func TestTodoService_ListTodos(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := context.Background()
	userID := uuid.New()

	todos := []*entity.Todo{
		{ID: uuid.New(), Title: "done", Completed: true, UserID: userID},
		{ID: uuid.New(), Title: "open", UserID: userID},
	}
	fx.todoRepo.EXPECT().FindByUser(ctx, userID).Return(todos, nil)

	got, err := fx.service.ListTodos(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, todos, got)
}

func TestTodoService_CreateTodo(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("trims and stores the title", func(t *testing.T) {
		fx := createTestTodoService(t)

		fx.todoRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(todo *entity.Todo) bool {
				return todo.Title == "buy milk" && todo.UserID == userID && !todo.Completed
			})).
			Run(func(_ context.Context, todo *entity.Todo) { todo.ID = uuid.New() }).
			Return(nil)

		todo, err := fx.service.CreateTodo(ctx, userID, &usecase.CreateTodoInput{Title: "  buy milk "})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, todo.ID)
		assert.Equal(t, "buy milk", todo.Title)
	})

	t.Run("rejects empty and oversized titles", func(t *testing.T) {
		fx := createTestTodoService(t)

		for _, title := range []string{"", "   ", strings.Repeat("x", maxTitleLength+1)} {
			_, err := fx.service.CreateTodo(ctx, userID, &usecase.CreateTodoInput{Title: title})

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
		}
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestTodoService(t)

		fx.todoRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserNotFound)

		_, err := fx.service.CreateTodo(ctx, userID, &usecase.CreateTodoInput{Title: "x"})

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestTodoService_Mutations_RequireOwnership(t *testing.T) {
	ctx := context.Background()
	intruder := uuid.New()
	todoID := uuid.NewString()

	calls := map[string]func(svc usecase.TodoUsecase) error{
		"rename": func(svc usecase.TodoUsecase) error {
			_, err := svc.RenameTodo(ctx, intruder, todoID, "mine now")
			return err
		},
		"complete": func(svc usecase.TodoUsecase) error {
			_, err := svc.CompleteTodo(ctx, intruder, todoID)
			return err
		},
		"incomplete": func(svc usecase.TodoUsecase) error {
			_, err := svc.IncompleteTodo(ctx, intruder, todoID)
			return err
		},
		"delete": func(svc usecase.TodoUsecase) error {
			return svc.DeleteTodo(ctx, intruder, todoID)
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			// No repository or transaction expectations: nothing may be touched.
			fx := createTestTodoService(t)
			fx.guard.EXPECT().VerifyOwner(ctx, todoID, intruder.String()).Return(domainerrors.ErrTodoNotFound)

			err := call(fx.service)

			require.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
			assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
		})
	}
}

func TestTodoService_CompleteAndIncomplete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	for _, completed := range []bool{true, false} {
		fx := createTestTodoService(t)
		fx.guard.EXPECT().VerifyOwner(ctx, id.String(), userID.String()).Return(nil)

		txTodoRepo := mockRepo.NewMockTodoRepository(t)
		txTodoRepo.EXPECT().SetCompleted(ctx, id, completed).Return(nil)
		txTodoRepo.EXPECT().FindByID(ctx, id).Return(&entity.Todo{ID: id, Completed: completed, UserID: userID}, nil)
		expectTransaction(t, fx.txManager, nil, txTodoRepo)

		var (
			todo *entity.Todo
			err  error
		)
		if completed {
			todo, err = fx.service.CompleteTodo(ctx, userID, id.String())
		} else {
			todo, err = fx.service.IncompleteTodo(ctx, userID, id.String())
		}

		require.NoError(t, err)
		assert.Equal(t, completed, todo.Completed)
	}
}

func TestTodoService_RenameTodo(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	t.Run("renames an owned todo", func(t *testing.T) {
		fx := createTestTodoService(t)
		fx.guard.EXPECT().VerifyOwner(ctx, id.String(), userID.String()).Return(nil)

		txTodoRepo := mockRepo.NewMockTodoRepository(t)
		txTodoRepo.EXPECT().UpdateTitle(ctx, id, "new title").Return(nil)
		txTodoRepo.EXPECT().FindByID(ctx, id).Return(&entity.Todo{ID: id, Title: "new title", UserID: userID}, nil)
		expectTransaction(t, fx.txManager, nil, txTodoRepo)

		todo, err := fx.service.RenameTodo(ctx, userID, id.String(), " new title ")

		require.NoError(t, err)
		assert.Equal(t, "new title", todo.Title)
	})

	t.Run("validates before checking ownership", func(t *testing.T) {
		fx := createTestTodoService(t)

		_, err := fx.service.RenameTodo(ctx, userID, id.String(), "")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("row vanished after the check", func(t *testing.T) {
		fx := createTestTodoService(t)
		fx.guard.EXPECT().VerifyOwner(ctx, id.String(), userID.String()).Return(nil)

		txTodoRepo := mockRepo.NewMockTodoRepository(t)
		txTodoRepo.EXPECT().UpdateTitle(ctx, id, "t").Return(repository.ErrTodoNotFound)
		expectTransaction(t, fx.txManager, nil, txTodoRepo)

		_, err := fx.service.RenameTodo(ctx, userID, id.String(), "t")

		require.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})
}

func TestTodoService_DeleteTodo(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	t.Run("deletes an owned todo", func(t *testing.T) {
		fx := createTestTodoService(t)
		fx.guard.EXPECT().VerifyOwner(ctx, id.String(), userID.String()).Return(nil)
		fx.todoRepo.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, fx.service.DeleteTodo(ctx, userID, id.String()))
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestTodoService(t)
		fx.guard.EXPECT().VerifyOwner(ctx, "abc", userID.String()).Return(domainerrors.ErrInvalidID)

		err := fx.service.DeleteTodo(ctx, userID, "abc")

		require.ErrorIs(t, err, domainerrors.ErrInvalidID)
		assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestTodoService(t)
		dbErr := errors.New("deadlock detected")
		fx.guard.EXPECT().VerifyOwner(ctx, id.String(), userID.String()).Return(nil)
		fx.todoRepo.EXPECT().Delete(ctx, id).Return(dbErr)

		err := fx.service.DeleteTodo(ctx, userID, id.String())

		require.ErrorIs(t, err, dbErr)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}
