// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"todolist/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the bearer token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new active user. A taken email yields ErrUserAlreadyExists.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Authenticate returns the user when the password matches. Unknown emails and
	// wrong passwords produce the same ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)

	// Login authenticates and issues an access token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ResolveCurrentUser maps a bearer token to its user.
	ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error)
}
