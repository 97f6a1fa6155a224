package gormdb

import (
	"context"

	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/infra/persistence/model"

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

// Create persists a new todo. A missing ID is generated here.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)
	if todoM.ID == uuid.Nil {
		todoM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTodoWriteFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTodoWriteFailed.WrapMessage("missing required todo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// FindByOwner retrieves every todo of a user, oldest first.
func (repo *todoRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error) {
	var todoModels []*model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&todoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find todos by owner")
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// FindByID retrieves a todo by its ID, whoever owns it.
func (repo *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	var todoM model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by ID")
	}

	return toTodoDomain(&todoM), nil
}

// Update writes the mutable columns of an existing todo, including zero values.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).
		Model(todoM).
		Select("title", "description", "completed", "updated_at").
		Updates(todoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTodoWriteFailed.WrapMessage("missing required todo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update todo")
	}

	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// Delete removes a todo permanently and reports whether a row was removed.
func (repo *todoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TodoModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete todo")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
