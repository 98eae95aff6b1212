// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/errors"
	"bookstore/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration flow: email uniqueness
// check, password hashing, storage and token issuance. The unique index on
// Email is the final backstop for the window between the lookup and the
// insert.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// ErrUserAlreadyExists surfaces here when the unique index catches a
		// concurrent registration of the same email.
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Issue(newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage("failed to issue token")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, Username: newUser.Username}, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password deliberately return the identical error so accounts cannot be
// enumerated.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("error", err))

		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage("failed to issue token")
	}

	srv.log(ctx).Debug("Login successful", slog.String("userID", user.ID))

	return &usecase.AuthOutput{Token: token, Username: user.Username}, nil
}
