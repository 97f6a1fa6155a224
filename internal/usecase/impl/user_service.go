// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"todolist/config"
	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
	"todolist/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	accessTokenTTL time.Duration
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	ttl := service.DefaultTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AccessTokenTTL > 0 {
		ttl = params.Config.Auth.AccessTokenTTL
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		accessTokenTTL: ttl,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register checks the email, hashes the password and creates the user inside one transaction.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		hashedPassword, err := srv.hashPassword(input.Password)
		if err != nil {
			return err
		}

		newUser := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: hashedPassword,
			IsActive:     true,
		}
		// A concurrent registration that wins the race surfaces here as ErrUserAlreadyExists.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrUserAlreadyExists):
			srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))
		case errors.Is(err, domainerrors.ErrValidationFailed):
			srv.log(ctx).Warn("Registration rejected, password too long", slog.String("email", input.Email))
		default:
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return registeredUser, nil
}

// hashPassword maps a password bcrypt cannot accept to a validation error and keeps the
// underlying cause on every other failure.
func (srv *userService) hashPassword(password string) (string, error) {
	hashed, err := srv.hasher.Hash(password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return "", errors.Join(
			domainerrors.ErrValidationFailed.WithDetails("password: must be at most 72 bytes"),
			err,
		)
	}
	if err != nil {
		return "", errors.WithStack(errors.Join(domainerrors.ErrPasswordHashFailed, err))
	}

	return hashed, nil
}

// Authenticate verifies an email and password pair.
func (srv *userService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the user and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.Issue(user.ID.String(), srv.accessTokenTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   srv.accessTokenTTL,
		User:        user,
	}, nil
}

// ResolveCurrentUser maps a bearer token to an existing user.
// Every way a token can fail is reported as ErrInvalidCredentials.
func (srv *userService) ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	subject, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected bearer token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		srv.log(ctx).Debug("Rejected bearer token with malformed subject", slog.String("subject", subject))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Bearer token refers to a missing user", slog.Any("userID", userID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
