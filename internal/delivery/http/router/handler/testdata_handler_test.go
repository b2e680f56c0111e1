package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"accounts/config"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router"
	"accounts/internal/delivery/http/router/handler"
	"accounts/internal/delivery/http/validator"
	"accounts/internal/infra/auth"
	"accounts/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestServerWithTestRoutes is newTestServer with the test-data endpoints
// switched on. The handler gets no database; these tests only drive requests
// that fail validation before any row is touched.
func newTestServerWithTestRoutes() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := newMemoryUserRepository()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	service := impl.NewUserService(impl.UserServiceParams{
		UserRepo:    userRepo,
		Hasher:      hasher,
		TokenIssuer: auth.NewUUIDTokenIssuer(),
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	apiRouter := router.NewRouter(router.RouterParams{
		Config: &config.Config{
			TestRoutes: &config.TestRoutesConfig{Enabled: true},
		},
		UserHandler:     handler.NewUserHandler(service, logger),
		TestDataHandler: handler.NewTestDataHandler(nil, hasher, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(userRepo, logger),
	})
	apiRouter.RegisterRoutes(e)

	return e
}

func TestTestRoutes_NotRegisteredWhenDisabled(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPost, "/test/users", `{"username":"test","password":"test","name":"test"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/test/users/test", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeedUser_MissingFields(t *testing.T) {
	e := newTestServerWithTestRoutes()

	rec := doJSON(e, http.MethodPost, "/test/users", `{}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := decodeBody(t, rec)["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "name")
}

func TestSeedUser_PasswordTooLong(t *testing.T) {
	e := newTestServerWithTestRoutes()

	long := strings.Repeat("a", 73)
	rec := doJSON(e, http.MethodPost, "/test/users", `{"username":"test","password":"`+long+`","name":"test"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := decodeBody(t, rec)["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "password")
}
