// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"soundem/internal/delivery/http/middleware"
	"soundem/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	SongHandler    *handler.SongHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	songHandler    *handler.SongHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		songHandler:    params.SongHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	{
		api.POST("/register", r.userHandler.Register)
		api.POST("/login", r.userHandler.Login)

		api.GET("/artists", r.catalogHandler.GetArtists)
		api.GET("/artists/:id", r.catalogHandler.GetArtist)
		api.GET("/albums", r.catalogHandler.GetAlbums)
		api.GET("/albums/:id", r.catalogHandler.GetAlbum)
		api.GET("/songs", r.songHandler.GetSongs)
	}

	// Song routes that require authentication. The static /songs/favorites
	// route takes precedence over the :id parameter.
	authed := e.Group("/api/v1")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/songs/favorites", r.songHandler.GetFavorites)
		authed.GET("/songs/:id", r.songHandler.GetSong)
		authed.PUT("/songs/:id", r.songHandler.ToggleFavorite)
	}
}
