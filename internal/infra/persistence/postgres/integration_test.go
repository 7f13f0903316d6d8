package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres starts a PostgreSQL container and applies the embedded
// migrations. Set TODO_INTEGRATION=1 to run.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("TODO_INTEGRATION") != "1" {
		t.Skip("TODO_INTEGRATION is not set, skipping PostgreSQL integration tests")
	}

	ctx := context.Background()

	container, err := pgmodule.Run(ctx,
		"postgres:16-alpine",
		pgmodule.WithDatabase("todo_test"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("skipping: could not start PostgreSQL container: %v", err)
	}

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, RunMigrations(ctx, sqlDB))

	return db
}

func TestPostgres_SchemaConstraints(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	todos := NewTodoRepository(db)

	user := &entity.User{Email: "pg@example.com", Name: "PG", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, user))

	err := users.Create(ctx, &entity.User{Email: "pg@example.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, repository.ErrDuplicateUser)

	err = todos.Create(ctx, &entity.Todo{Title: "orphan", UserID: uuid.New()})
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	todo := &entity.Todo{Title: "real", UserID: user.ID}
	require.NoError(t, todos.Create(ctx, todo))

	count, err := todos.CountOwned(ctx, todo.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = todos.CountOwned(ctx, todo.ID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
}
