// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"monstermap/internal/delivery/http/middleware"
	"monstermap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	AdminHandler    *handler.AdminHandler
	ProxyHandler    *handler.ProxyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	adminHandler    *handler.AdminHandler
	proxyHandler    *handler.ProxyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		adminHandler:    params.AdminHandler,
		proxyHandler:    params.ProxyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public map routes
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.ListLocations)
		locationGroup.POST("/submit", r.locationHandler.SubmitLocation)
		locationGroup.PUT("/:id", r.locationHandler.UpdateLocation)
	}

	e.GET("/variants/search", r.locationHandler.SearchVariants)

	// Upstream proxies keep the provider keys server-side
	e.GET("/address/search", r.proxyHandler.SearchAddress)
	e.GET("/map-tiles", r.proxyHandler.FetchTile)

	// Admin routes; everything except login requires the bearer token
	adminGroup := e.Group("/admin")
	adminGroup.POST("/auth", r.adminHandler.Authenticate)

	protectedGroup := adminGroup.Group("")
	protectedGroup.Use(r.authMiddleware.Authenticate)
	{
		protectedGroup.GET("/locations", r.adminHandler.ListLocations)
		protectedGroup.DELETE("/:id", r.adminHandler.DeleteLocation)
		protectedGroup.PUT("/:id/note", r.adminHandler.SetNote)
	}
}
