package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"todolist/config"
	"todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/response"
	"todolist/internal/delivery/api/router"
	"todolist/internal/delivery/api/router/handler"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	mockUsecase "todolist/internal/mocks/usecase"
	"todolist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type serverFixtures struct {
	echo   *echo.Echo
	userUC *mockUsecase.MockUserUsecase
	todoUC *mockUsecase.MockTodoUsecase
	user   *entity.User
}

func createTestServer(t *testing.T) serverFixtures {
	userUC := mockUsecase.NewMockUserUsecase(t)
	todoUC := mockUsecase.NewMockTodoUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := NewEcho(&config.Config{}, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC, Logger: logger}),
		TodoHandler:    handler.NewTodoHandler(handler.TodoHandlerParams{TodoUC: todoUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{UserUC: userUC}),
	})

	return serverFixtures{
		echo:   e,
		userUC: userUC,
		todoUC: todoUC,
		user: &entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			Username:     "alice",
			PasswordHash: "$2a$10$secret",
			IsActive:     true,
		},
	}
}

func (f serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f serverFixtures) expectAuthenticated() {
	f.userUC.EXPECT().ResolveCurrentUser(mock.Anything, validToken).Return(f.user, nil)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)

	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)

	return body
}

func TestServer_RootAndHealth(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to Todo List API with Hexagonal Architecture"}`, rec.Body.String())

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_Register(t *testing.T) {
	for _, path := range []string{"/auth/register", "/auth/register/"} {
		t.Run(path, func(t *testing.T) {
			fx := createTestServer(t)
			fx.userUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
				Email:    "alice@example.com",
				Username: "alice",
				Password: "s3cret",
			}).Return(fx.user, nil)

			rec := fx.do(jsonRequest(http.MethodPost, path,
				`{"email":"alice@example.com","username":"alice","password":"s3cret"}`))

			require.Equal(t, http.StatusOK, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, fx.user.ID.String(), body["id"])
			assert.Equal(t, "alice@example.com", body["email"])
			assert.Equal(t, true, body["is_active"])
			assert.NotContains(t, rec.Body.String(), "secret")
		})
	}
}

func TestServer_Register_ValidationFailed(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register",
		`{"email":"not-an-email","username":"alice","password":"s3cret"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "email: must be a valid email address", body.Error.Details)
}

func TestServer_Register_MultibytePasswordOverBcryptLimit(t *testing.T) {
	fx := createTestServer(t)

	body := `{"email":"alice@example.com","username":"alice","password":"` + strings.Repeat("密", 30) + `"}`
	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errBody.Error.Code)
	assert.Equal(t, "password: must be at most 72 bytes", errBody.Error.Details)
}

func TestServer_Register_MalformedBody(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", `{"email":`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestServer_Register_DuplicateEmail(t *testing.T) {
	fx := createTestServer(t)
	fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "register user"))

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","username":"alice","password":"s3cret"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
	assert.Equal(t, "User with this email already exists", body.Error.Message)
}

func TestServer_Token(t *testing.T) {
	fx := createTestServer(t)
	fx.userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret",
	}).Return(&usecase.LoginOutput{
		AccessToken: "jwt",
		TokenType:   "bearer",
		ExpiresIn:   30 * time.Minute,
		User:        fx.user,
	}, nil)

	form := url.Values{"username": {"alice@example.com"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := fx.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"jwt","token_type":"bearer","expires_in":1800}`, rec.Body.String())
}

func TestServer_Token_InvalidCredentials(t *testing.T) {
	fx := createTestServer(t)
	fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	form := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := fx.do(req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestServer_Me(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	rec := fx.do(authorized(httptest.NewRequest(http.MethodGet, "/auth/me", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fx.user.ID.String())
}

func TestServer_Me_MissingToken(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body.Meta.RequestID)
}

func TestServer_Me_WrongScheme(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic "+validToken)

	rec := fx.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-request-1")

	rec := fx.do(req)

	assert.Equal(t, "client-request-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "client-request-1", decodeError(t, rec).Meta.RequestID)
}

func TestServer_CreateTodo(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	description := "two litres"
	todo := &entity.Todo{ID: uuid.New(), Title: "milk", Description: &description, UserID: fx.user.ID}
	fx.todoUC.EXPECT().Create(mock.Anything, usecase.CreateTodoInput{
		Title:       "milk",
		Description: &description,
	}, fx.user.ID).Return(todo, nil)

	rec := fx.do(authorized(jsonRequest(http.MethodPost, "/todos/", `{"title":"milk","description":"two litres"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body entity.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, todo.ID, body.ID)
	assert.False(t, body.Completed)
}

func TestServer_CreateTodo_EmptyTitle(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	rec := fx.do(authorized(jsonRequest(http.MethodPost, "/todos", `{"title":""}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "title: is required", body.Error.Details)
}

func TestServer_CreateTodo_RequiresAuthentication(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/todos/", `{"title":"milk"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ListTodos(t *testing.T) {
	for _, path := range []string{"/todos", "/todos/"} {
		t.Run(path, func(t *testing.T) {
			fx := createTestServer(t)
			fx.expectAuthenticated()
			fx.todoUC.EXPECT().ListByOwner(mock.Anything, fx.user.ID).Return([]*entity.Todo{}, nil)

			rec := fx.do(authorized(httptest.NewRequest(http.MethodGet, path, nil)))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestServer_GetTodo(t *testing.T) {
	todoID := uuid.New()

	tests := []struct {
		name       string
		returnTodo bool
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "owned", returnTodo: true, wantStatus: http.StatusOK},
		{name: "missing", err: domainerrors.ErrTodoNotFound, wantStatus: http.StatusNotFound, wantCode: "TODO_NOT_FOUND"},
		{name: "foreign", err: domainerrors.ErrUnauthorized, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "storage failure", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)
			fx.expectAuthenticated()

			var todo *entity.Todo
			if tt.returnTodo {
				todo = &entity.Todo{ID: todoID, Title: "milk", UserID: fx.user.ID}
			}
			fx.todoUC.EXPECT().GetOwned(mock.Anything, todoID, fx.user.ID).Return(todo, tt.err)

			rec := fx.do(authorized(httptest.NewRequest(http.MethodGet, "/todos/"+todoID.String(), nil)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				assert.Contains(t, rec.Body.String(), todoID.String())

				return
			}
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestServer_GetTodo_MalformedID(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	rec := fx.do(authorized(httptest.NewRequest(http.MethodGet, "/todos/not-a-uuid", nil)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestServer_UpdateTodo(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	todoID := uuid.New()
	updated := &entity.Todo{ID: todoID, Title: "milk", Completed: false, UserID: fx.user.ID}
	fx.todoUC.EXPECT().Update(mock.Anything, todoID, fx.user.ID, mock.MatchedBy(func(input usecase.UpdateTodoInput) bool {
		return input.Title == nil && input.Description == nil && input.Completed != nil && !*input.Completed
	})).Return(updated, nil)

	rec := fx.do(authorized(jsonRequest(http.MethodPut, "/todos/"+todoID.String()+"/", `{"completed":false}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed":false`)
}

func TestServer_UpdateTodo_TitleTooLong(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	body := `{"title":"` + strings.Repeat("x", 201) + `"}`
	rec := fx.do(authorized(jsonRequest(http.MethodPut, "/todos/"+uuid.NewString(), body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title: must be at most 200 characters", decodeError(t, rec).Error.Details)
}

func TestServer_DeleteTodo(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	todoID := uuid.New()
	fx.todoUC.EXPECT().Delete(mock.Anything, todoID, fx.user.ID).Return(true, nil)

	rec := fx.do(authorized(httptest.NewRequest(http.MethodDelete, "/todos/"+todoID.String(), nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Todo deleted successfully"}`, rec.Body.String())
}

func TestServer_DeleteTodo_NothingDeleted(t *testing.T) {
	fx := createTestServer(t)
	fx.expectAuthenticated()

	todoID := uuid.New()
	fx.todoUC.EXPECT().Delete(mock.Anything, todoID, fx.user.ID).Return(false, nil)

	rec := fx.do(authorized(httptest.NewRequest(http.MethodDelete, "/todos/"+todoID.String(), nil)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TODO_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}
