// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, output)
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, output)
}

// Current handles GET /api/users/current. The auth gate has already resolved
// the identity, so this cannot fail.
func (h *UserHandler) Current(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no identity on request")
	}

	return response.Data(c, http.StatusOK, h.uc.Current(user))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no identity on request")
	}

	input := new(usecase.UpdateInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, output)
}

// Logout handles DELETE /api/users/current by clearing the stored token.
func (h *UserHandler) Logout(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no identity on request")
	}

	if err := h.uc.Logout(c.Request().Context(), user); err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, "OK")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Data(c, http.StatusOK, map[string]string{"status": "ok"})
}
