package usecase

import (
	"context"

	"todolist/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput defines the data required to create a todo.
type CreateTodoInput struct {
	Title       string
	Description *string
}

// UpdateTodoInput is a partial update. Nil fields are left unchanged.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoUsecase defines the per-user todo operations.
// Every operation on a single todo reports a missing todo before a foreign one.
type TodoUsecase interface {
	Create(ctx context.Context, input CreateTodoInput, ownerID uuid.UUID) (*entity.Todo, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error)
	GetOwned(ctx context.Context, todoID, ownerID uuid.UUID) (*entity.Todo, error)
	Update(ctx context.Context, todoID, ownerID uuid.UUID, input UpdateTodoInput) (*entity.Todo, error)
	Delete(ctx context.Context, todoID, ownerID uuid.UUID) (bool, error)
}
