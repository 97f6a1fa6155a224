package repository

import (
	"context"
	"errors"

	"todolist/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when a todo is not found.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines persistence operations for todos.
// It performs no ownership checks; those belong to the use case layer.
type TodoRepository interface {
	// Create persists a new todo.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByOwner returns every todo owned by userID, oldest first. Never nil.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error)

	// FindByID retrieves a todo by its ID regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)

	// Update writes title, description, completed and updated_at of an existing todo.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes the todo and reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
