// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		todoHandler:    params.TodoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		both(authGroup, echo.POST, "/register", r.authHandler.Register)
		both(authGroup, echo.POST, "/token", r.authHandler.Token)
		both(authGroup, echo.GET, "/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Todo routes, all scoped to the authenticated user
	todosGroup := e.Group("/todos")
	todosGroup.Use(r.authMiddleware.Authenticate)
	{
		both(todosGroup, echo.POST, "", r.todoHandler.CreateTodo)
		both(todosGroup, echo.GET, "", r.todoHandler.ListTodos)
		both(todosGroup, echo.GET, "/:id", r.todoHandler.GetTodo)
		both(todosGroup, echo.PUT, "/:id", r.todoHandler.UpdateTodo)
		both(todosGroup, echo.DELETE, "/:id", r.todoHandler.DeleteTodo)
	}
}

// both registers path with and without a trailing slash.
func both(g *echo.Group, method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	trimmed := strings.TrimSuffix(path, "/")
	g.Add(method, trimmed, h, m...)
	g.Add(method, trimmed+"/", h, m...)
}
