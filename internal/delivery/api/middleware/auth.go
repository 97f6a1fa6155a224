package middleware

import (
	"strings"

	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const contextKeyCurrentUser = "currentUser"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AuthMiddleware resolves the bearer token of a request to its user.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC}
}

// Authenticate rejects the request with 401 unless it carries a bearer token of an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrInvalidCredentials
		}

		user, err := m.userUC.ResolveCurrentUser(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(contextKeyCurrentUser, user)

		return next(c)
	}
}

// GetCurrentUser returns the user stored by Authenticate.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyCurrentUser).(*entity.User)

	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
