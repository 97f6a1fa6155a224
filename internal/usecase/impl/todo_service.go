package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventPublishTimeout bounds how long a mutation waits on the event broker.
const eventPublishTimeout = 2 * time.Second

// todoService implements the TodoUsecase interface.
type todoService struct {
	txManager repository.TransactionManager
	todoRepo  repository.TodoRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// TodoServiceParams holds dependencies for TodoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TodoRepo  repository.TodoRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		txManager: params.TxManager,
		todoRepo:  params.TodoRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new, not yet completed todo for ownerID.
func (srv *todoService) Create(ctx context.Context, input usecase.CreateTodoInput, ownerID uuid.UUID) (*entity.Todo, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}

	todo := &entity.Todo{
		Title:       input.Title,
		Description: input.Description,
		UserID:      ownerID,
	}
	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Any("userID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Debug("Todo created", slog.Any("todoID", todo.ID), slog.Any("userID", ownerID))
	srv.publish(ctx, service.TodoEventCreated, todo)

	return todo, nil
}

// ListByOwner returns the owner's todos. The result is never nil.
func (srv *todoService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}
	if todos == nil {
		todos = []*entity.Todo{}
	}

	return todos, nil
}

// GetOwned returns the todo when it exists and belongs to ownerID.
func (srv *todoService) GetOwned(ctx context.Context, todoID, ownerID uuid.UUID) (*entity.Todo, error) {
	return srv.loadOwned(ctx, srv.todoRepo, todoID, ownerID)
}

// Update applies the non-nil fields of input inside one transaction.
func (srv *todoService) Update(ctx context.Context, todoID, ownerID uuid.UUID, input usecase.UpdateTodoInput) (*entity.Todo, error) {
	if input.Title != nil && *input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}

	var updated *entity.Todo
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.TodoRepo()

		todo, err := srv.loadOwned(ctx, todoRepo, todoID, ownerID)
		if err != nil {
			return err
		}

		applyTodoUpdate(todo, input)
		todo.UpdatedAt = time.Now()

		if err := todoRepo.Update(ctx, todo); err != nil {
			return errors.Wrap(err, "failed to update todo")
		}

		updated = todo

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute todo update transaction")
	}

	srv.publish(ctx, service.TodoEventUpdated, updated)

	return updated, nil
}

// Delete removes the todo and reports whether a row was removed.
func (srv *todoService) Delete(ctx context.Context, todoID, ownerID uuid.UUID) (bool, error) {
	var (
		target  *entity.Todo
		deleted bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.TodoRepo()

		todo, err := srv.loadOwned(ctx, todoRepo, todoID, ownerID)
		if err != nil {
			return err
		}

		deleted, err = todoRepo.Delete(ctx, todo.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete todo")
		}
		target = todo

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute todo delete transaction")
	}

	if deleted {
		srv.publish(ctx, service.TodoEventDeleted, target)
	}

	return deleted, nil
}

// loadOwned reports a missing todo before checking who owns it.
func (srv *todoService) loadOwned(ctx context.Context, todoRepo repository.TodoRepository, todoID, ownerID uuid.UUID) (*entity.Todo, error) {
	todo, err := todoRepo.FindByID(ctx, todoID)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return nil, domainerrors.ErrTodoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find todo")
	}

	if !todo.IsOwnedBy(ownerID) {
		srv.log(ctx).Warn("Todo access denied", slog.Any("todoID", todoID), slog.Any("userID", ownerID))

		return nil, domainerrors.ErrUnauthorized
	}

	return todo, nil
}

func applyTodoUpdate(todo *entity.Todo, input usecase.UpdateTodoInput) {
	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = input.Description
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}
}

// publish emits a todo event. Failures are logged and never fail the caller.
func (srv *todoService) publish(ctx context.Context, eventType service.TodoEventType, todo *entity.Todo) {
	event := &service.TodoEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		TodoID:     todo.ID.String(),
		UserID:     todo.UserID.String(),
		Completed:  todo.Completed,
		OccurredAt: time.Now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(ctx, eventPublishTimeout)
	defer cancel()

	if err := srv.publisher.PublishTodoEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish todo event",
			slog.String("type", string(eventType)),
			slog.Any("todoID", todo.ID),
			slog.Any("error", err),
		)
	}
}
