package handler

import (
	"todolist/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root greets API clients.
func Root(c echo.Context) error {
	return response.Message(c, "Welcome to Todo List API with Hexagonal Architecture")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "healthy"})
}
