package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/infra/auth"
	"todo/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a file-backed sqlite database with the todo schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "todo.db")), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.TodoModel{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Test", PasswordHash: "$argon2id$placeholder"}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "  Alice@Example.COM ")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.PasswordHash, byID.PasswordHash)

	byEmail, err := repo.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	createUser(t, repo, "dup@example.com")

	err := repo.Create(context.Background(), &entity.User{Email: "DUP@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestTodoRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	todos := NewTodoRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "owner@example.com")
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	older := &entity.Todo{Title: "older", UserID: owner.ID, CreatedAt: base}
	newer := &entity.Todo{Title: "newer", UserID: owner.ID, CreatedAt: base.Add(time.Hour)}
	finished := &entity.Todo{Title: "finished", UserID: owner.ID, Completed: true, CreatedAt: base.Add(-time.Hour)}
	for _, todo := range []*entity.Todo{older, newer, finished} {
		require.NoError(t, todos.Create(ctx, todo))
	}

	list, err := todos.FindByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"finished", "newer", "older"}, []string{list[0].Title, list[1].Title, list[2].Title})

	require.NoError(t, todos.UpdateTitle(ctx, older.ID, "renamed"))
	require.NoError(t, todos.SetCompleted(ctx, older.ID, true))

	got, err := todos.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.True(t, got.Completed)

	require.NoError(t, todos.SetCompleted(ctx, older.ID, false))
	got, err = todos.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	require.NoError(t, todos.Delete(ctx, older.ID))
	_, err = todos.FindByID(ctx, older.ID)
	require.ErrorIs(t, err, repository.ErrTodoNotFound)

	require.ErrorIs(t, todos.Delete(ctx, older.ID), repository.ErrTodoNotFound)
	require.ErrorIs(t, todos.UpdateTitle(ctx, uuid.New(), "x"), repository.ErrTodoNotFound)
}

func TestTodoOwnershipGuard_AgainstStore(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	todos := NewTodoRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice@example.com")
	bob := createUser(t, users, "bob@example.com")

	todo := &entity.Todo{Title: "alice's", UserID: alice.ID}
	require.NoError(t, todos.Create(ctx, todo))

	guard := auth.NewTodoOwnershipGuard(todos)

	require.NoError(t, guard.VerifyOwner(ctx, todo.ID.String(), alice.ID.String()))

	errOther := guard.VerifyOwner(ctx, todo.ID.String(), bob.ID.String())
	errMissing := guard.VerifyOwner(ctx, uuid.NewString(), alice.ID.String())
	require.ErrorIs(t, errOther, domainerrors.ErrTodoNotFound)
	require.ErrorIs(t, errMissing, domainerrors.ErrTodoNotFound)
	assert.Equal(t, errOther.Error(), errMissing.Error())

	require.ErrorIs(t, guard.VerifyOwner(ctx, "42", alice.ID.String()), domainerrors.ErrInvalidID)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		createUser(t, f.UserRepo(), "rollback@example.com")

		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "rollback@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := createUser(t, f.UserRepo(), "commit@example.com")

		return f.TodoRepo().Create(ctx, &entity.Todo{Title: "first", UserID: user.ID})
	}))

	exists, err = NewUserRepository(db).ExistsByEmail(ctx, "commit@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
