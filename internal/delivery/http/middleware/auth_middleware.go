package middleware

import (
	"log/slog"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderAPIToken is the request header carrying the opaque session token.
const HeaderAPIToken = "X-API-TOKEN"

// currentUserKey is the echo context key under which the resolved identity travels.
const currentUserKey = "currentUser"

// AuthMiddleware is the authentication gate for the protected route group.
// Per request it moves through TokenExtracted → Resolved, or short-circuits
// with a 401 when the header is missing or the token resolves to nobody.
type AuthMiddleware struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo, logger: logger}
}

// Authenticate validates the X-API-TOKEN header against the user store and
// attaches the resolved identity to the request context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderAPIToken)
		if token == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("missing API token")
		}

		user, err := m.userRepo.FindByToken(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthorized.WrapMessage("unknown API token")
			}

			m.logger.Error("Token resolution failed", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrStorageUnavailable, "failed to resolve API token")
		}

		SetCurrentUser(c, user)

		return next(c)
	}
}

// SetCurrentUser attaches the resolved identity to the request context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the identity the gate resolved for this request. The
// second return is false on an unguarded route where the gate never ran.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(currentUserKey).(*entity.User)

	return user, ok
}
