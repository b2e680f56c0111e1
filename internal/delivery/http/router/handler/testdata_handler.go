package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/service"
	"accounts/internal/infra/persistence/model"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TestDataHandler exposes the row-level seed/teardown endpoints the test
// harness uses. It deliberately bypasses the user service and writes the
// users table directly, and is only routed when testRoutes.enabled is set.
type TestDataHandler struct {
	db     *gorm.DB
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewTestDataHandler is the constructor for TestDataHandler.
func NewTestDataHandler(db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) *TestDataHandler {
	return &TestDataHandler{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

type seedUserInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
	Token    string `json:"token"`
}

// SeedUser handles POST /test/users: inserts a user row with a known
// password and, optionally, a pre-assigned token.
func (h *TestDataHandler) SeedUser(c echo.Context) error {
	input := new(seedUserInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	hashedPassword, err := h.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	row := &model.UserModel{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}
	if input.Token != "" {
		issuedAt := time.Now()
		row.Token = &input.Token
		row.TokenIssuedAt = &issuedAt
	}

	if err := h.db.WithContext(c.Request().Context()).Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to seed user row")
	}

	h.logger.Debug("Seeded test user", slog.String("username", input.Username))

	return response.Data(c, http.StatusOK, "OK")
}

// DeleteUser handles DELETE /test/users/:username: removes the row outright.
func (h *TestDataHandler) DeleteUser(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BadRequest(c, "username is required")
	}

	if err := h.db.WithContext(c.Request().Context()).
		Where("username = ?", username).
		Delete(&model.UserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user row")
	}

	h.logger.Debug("Deleted test user", slog.String("username", username))

	return response.Data(c, http.StatusOK, "OK")
}
