// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/response"
	"todolist/internal/delivery/api/validator"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, token issuance and the current user.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the JSON body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=72,bcryptlen"`
}

// TokenRequest is the OAuth2 password form of POST /auth/token. Username carries the email.
type TokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse follows the OAuth2 token response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Register creates a user account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// Token exchanges email and password for a bearer token.
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   int64(output.ExpiresIn.Seconds()),
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	return response.OK(c, user)
}

// bindAndValidate decodes the request into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}
