// Package router contains route registration for the HTTP delivery.
package router

import (
	"accounts/config"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds everything route registration needs, injected by Fx.
type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	TestDataHandler *handler.TestDataHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	userHandler     *handler.UserHandler
	testDataHandler *handler.TestDataHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		userHandler:     params.UserHandler,
		testDataHandler: params.TestDataHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Registration and login are deliberately unguarded; only the current-user
// group sits behind the authentication gate.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/users", r.userHandler.Register)
		api.POST("/users/login", r.userHandler.Login)
	}

	current := api.Group("/users/current")
	current.Use(r.authMiddleware.Authenticate)
	{
		current.GET("", r.userHandler.Current)
		current.PATCH("", r.userHandler.Update)
		current.DELETE("", r.userHandler.Logout)
	}

	// Row-level seed/teardown endpoints for the test harness only.
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		test := e.Group("/test")
		test.POST("/users", r.testDataHandler.SeedUser)
		test.DELETE("/users/:username", r.testDataHandler.DeleteUser)
	}
}
