// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BookHandler    *handler.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes, open to unauthenticated callers
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Book routes require a valid bearer token
	booksGroup := api.Group("/books")
	booksGroup.Use(r.authMiddleware.Authenticate)
	{
		booksGroup.GET("", r.bookHandler.ListBooks)
		booksGroup.GET("/:id", r.bookHandler.GetBook)
		booksGroup.POST("", r.bookHandler.CreateBook)
		booksGroup.PUT("/:id", r.bookHandler.UpdateBook)
		booksGroup.DELETE("/:id", r.bookHandler.DeleteBook)
	}
}
