// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	tokenIssuer service.TokenIssuer
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	TokenIssuer service.TokenIssuer
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		tokenIssuer: params.TokenIssuer,
		logger:      params.Logger,
	}
}

// Register orchestrates the registration flow: hash the password, persist the
// user, return the public view. Username uniqueness is left to the storage
// layer, so a duplicate surfaces as the Conflict domain error even when two
// registrations race.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return toUserOutput(newUser), nil
}

// Login verifies credentials and rotates the session token. A missing user
// and a wrong password both map to ErrInvalidCredentials so the response
// cannot be used to enumerate usernames.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	ok, checkErr := srv.hasher.Check(input.Password, user.PasswordHash)
	if checkErr != nil {
		// A corrupt stored hash is an internal condition worth flagging, but
		// the client must see the same answer as a wrong password.
		srv.logger.Error("Stored credential failed verification", slog.String("username", input.Username), slog.Any("error", checkErr))
	}
	if !ok {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Rotate the token on every login: the fresh value overwrites the stored
	// one, so any previously issued token stops resolving immediately.
	token := srv.tokenIssuer.Issue()
	issuedAt := time.Now()
	user.Token = &token
	user.TokenIssuedAt = &issuedAt

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.logger.Error("Failed to persist session token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session token during login")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
	}, nil
}

// Current returns the public view of the gate-resolved identity.
func (srv *userService) Current(user *entity.User) *usecase.UserOutput {
	return toUserOutput(user)
}

// Update applies the optional name/password changes. At least one field must
// be present and present fields must be non-empty; only changed fields are
// persisted differently from their prior values.
func (srv *userService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateInput) (*usecase.UserOutput, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.logger.Error("Failed to hash password during update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during update")
		}
		user.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.logger.Warn("Profile update failed", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.logger.Debug("Profile updated", slog.Any("userID", user.ID))

	return toUserOutput(user), nil
}

// Logout clears the stored token so it stops resolving.
func (srv *userService) Logout(ctx context.Context, user *entity.User) error {
	user.Token = nil
	user.TokenIssuedAt = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.logger.Warn("Logout failed", slog.String("username", user.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear session token during logout")
	}

	srv.logger.Debug("User logged out", slog.Any("userID", user.ID))

	return nil
}

// validateUpdateInput enforces the "optional but non-empty" rule that
// struct tags cannot express for pointer fields.
func validateUpdateInput(input *usecase.UpdateInput) error {
	if input.Name == nil && input.Password == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one of name or password must be provided")
	}

	fields := make(map[string]string)
	if input.Name != nil && *input.Name == "" {
		fields["name"] = "name must not be empty"
	}
	if input.Password != nil && *input.Password == "" {
		fields["password"] = "password must not be empty"
	}

	if len(fields) > 0 {
		return domainerrors.NewFieldErrors(fields)
	}

	return nil
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		Username: user.Username,
		Name:     user.Name,
	}
}
