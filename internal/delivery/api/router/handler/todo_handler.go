package handler

import (
	"log/slog"

	"todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/response"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC usecase.TodoUsecase
	Logger *slog.Logger
}

// TodoHandler holds dependencies for todo handlers. Every route runs behind AuthMiddleware.
type TodoHandler struct {
	todoUC usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{
		todoUC: params.TodoUC,
		logger: params.Logger,
	}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// UpdateTodoRequest represents the request body for a partial todo update
type UpdateTodoRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// CreateTodo handles todo creation
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	owner, ok := middleware.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	var req CreateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.todoUC.Create(c.Request().Context(), usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	}, owner.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, todo)
}

// ListTodos handles listing the caller's todos
func (h *TodoHandler) ListTodos(c echo.Context) error {
	owner, ok := middleware.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	todos, err := h.todoUC.ListByOwner(c.Request().Context(), owner.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, todos)
}

// GetTodo handles retrieving a single todo
func (h *TodoHandler) GetTodo(c echo.Context) error {
	owner, todoID, err := h.ownerAndTodoID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoUC.GetOwned(c.Request().Context(), todoID, owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, todo)
}

// UpdateTodo handles partial updates of a todo
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	owner, todoID, err := h.ownerAndTodoID(c)
	if err != nil {
		return err
	}

	var req UpdateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.todoUC.Update(c.Request().Context(), todoID, owner, usecase.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, todo)
}

// DeleteTodo handles todo deletion
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	owner, todoID, err := h.ownerAndTodoID(c)
	if err != nil {
		return err
	}

	deleted, err := h.todoUC.Delete(c.Request().Context(), todoID, owner)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return domainerrors.ErrTodoNotFound
	}

	return response.Message(c, "Todo deleted successfully")
}

func (h *TodoHandler) ownerAndTodoID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	owner, ok := middleware.GetCurrentUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidCredentials
	}

	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id: must be a valid UUID")
	}

	return owner.ID, todoID, nil
}
