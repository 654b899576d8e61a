// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/router/handler"
	"ratehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	RatingHandler  *handler.RatingHandler
	StoreHandler   *handler.StoreHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	ratingHandler  *handler.RatingHandler
	storeHandler   *handler.StoreHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		ratingHandler:  params.RatingHandler,
		storeHandler:   params.StoreHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Password change for any authenticated account
	e.PUT("/update-password", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)

	// Routes for signed-in regular users
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		userGroup.GET("/stores", r.ratingHandler.ListStores)
	}

	e.POST("/rate", r.ratingHandler.RateStore,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleUser))

	// Store dashboard routes; store login itself is open
	storeGroup := e.Group("/store")
	{
		storeGroup.POST("/store-login", r.authHandler.StoreLogin)

		storeGroup.GET("/ratings", r.storeHandler.Ratings,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleStore))
		storeGroup.PUT("/update-password", r.authHandler.UpdatePassword,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleStore))
	}

	// Administrator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/stores", r.adminHandler.ListStores)
		adminGroup.POST("/create-user", r.adminHandler.CreateUser)
		adminGroup.POST("/create-store", r.adminHandler.CreateStore)
	}
}
