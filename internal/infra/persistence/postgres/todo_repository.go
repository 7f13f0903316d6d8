package postgres

import (
	"context"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the repository.TodoRepository interface.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{
		db: db,
	}
}

// Create persists a new todo.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate todo ID")
		}
		todo.ID = id
	}

	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// FindByID retrieves a todo by its ID.
func (repo *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	var todoM model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find todo by ID")
	}

	return toTodoDomain(&todoM), nil
}

// FindByUser lists a user's todos, completed first, then newest first.
func (repo *todoRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error) {
	var todoModels []*model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed DESC").
		Order("created_at DESC").
		Find(&todoModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find todos by user")
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// CountOwned counts todos matching both id and owner.
func (repo *todoRepository) CountOwned(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count owned todos")
	}

	return count, nil
}

// UpdateTitle renames a todo.
func (repo *todoRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	return repo.update(ctx, id, "title", title)
}

// SetCompleted updates the completion flag of a todo.
func (repo *todoRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return repo.update(ctx, id, "completed", completed)
}

func (repo *todoRepository) update(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo "+column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// Delete removes a todo.
func (repo *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TodoModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTodoDomain converts a GORM TodoModel to a domain Todo entity.
func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:        data.ID,
		Title:     data.Title,
		Completed: data.Completed,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTodoDomain converts a domain Todo entity to a GORM TodoModel.
func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:        data.ID,
		Title:     data.Title,
		Completed: data.Completed,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
