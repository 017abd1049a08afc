// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lodging/internal/delivery/http/middleware"
	"lodging/internal/delivery/http/router/handler"
	"lodging/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	CustomerHandler    *handler.CustomerHandler
	LodgingHandler     *handler.LodgingHandler
	ReservationHandler *handler.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	customerHandler    *handler.CustomerHandler
	lodgingHandler     *handler.LodgingHandler
	reservationHandler *handler.ReservationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		customerHandler:    params.CustomerHandler,
		lodgingHandler:     params.LodgingHandler,
		reservationHandler: params.ReservationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireScope(entity.ScopeAdmin)

	e.GET("/health", handler.HealthCheck)
	e.GET("/.well-known/jwks.json", r.authHandler.JWKS)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	customerGroup := e.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.Register)

		// Static admin paths are registered before /:id so they win the match.
		customerGroup.GET("", r.customerHandler.List, authenticate, adminOnly)
		customerGroup.GET("/statistics", r.customerHandler.Statistics, authenticate, adminOnly)
		customerGroup.GET("/search", r.customerHandler.SearchByCountry, authenticate, adminOnly)
		customerGroup.GET("/passport-expiring", r.customerHandler.PassportExpiring, authenticate, adminOnly)

		customerGroup.GET("/:id", r.customerHandler.Get, authenticate)
		customerGroup.PATCH("/:id", r.customerHandler.Update, authenticate)
		customerGroup.DELETE("/:id", r.customerHandler.Delete, authenticate)
		customerGroup.GET("/:id/reservations", r.reservationHandler.ListByCustomer, authenticate)
	}

	lodgingGroup := e.Group("/lodgings")
	{
		lodgingGroup.GET("", r.lodgingHandler.Search)
		lodgingGroup.GET("/:id", r.lodgingHandler.Get)
		lodgingGroup.POST("", r.lodgingHandler.Create, authenticate, adminOnly)
		lodgingGroup.PATCH("/:id", r.lodgingHandler.Update, authenticate, adminOnly)
		lodgingGroup.DELETE("/:id", r.lodgingHandler.Delete, authenticate, adminOnly)
	}

	reservationGroup := e.Group("/reservations", authenticate)
	{
		reservationGroup.POST("", r.reservationHandler.Create)
		reservationGroup.GET("", r.reservationHandler.List, adminOnly)
		reservationGroup.GET("/:id", r.reservationHandler.Get)
		reservationGroup.DELETE("/:id", r.reservationHandler.Cancel)
	}
}
