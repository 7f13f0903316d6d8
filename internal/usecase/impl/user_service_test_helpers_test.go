package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todo/internal/domain/repository"
	mockRepo "todo/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a factory
// that hands out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo repository.UserRepository,
	todoRepo repository.TodoRepository,
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if userRepo != nil {
				factory.EXPECT().UserRepo().Return(userRepo).Maybe()
			}
			if todoRepo != nil {
				factory.EXPECT().TodoRepo().Return(todoRepo).Maybe()
			}

			return fn(factory)
		})
}
