// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)
	e.GET("/users/:userId", r.userHandler.GetProfile)

	// Routes that require an authenticated session. Echo matches the static
	// "name" segment before the ":userId" parameter, so these do not collide
	// with the public profile lookup.
	nameGroup := e.Group("/users/name")
	nameGroup.Use(r.authMiddleware.Authenticate)
	{
		nameGroup.PUT("", r.userHandler.ChangeName)
		nameGroup.GET("/history", r.userHandler.NameHistory)
	}
}
