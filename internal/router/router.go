// Package router wires the HTTP routes to their handlers. The health check
// and login are public; every catalog route requires a valid access token.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"cinema_rental/internal/config"
	"cinema_rental/internal/handler"
	"cinema_rental/internal/middleware"
)

// Register attaches all application routes to the Echo instance. The Redis
// client may be nil, which disables rate limiting and response caching.
func Register(e *echo.Echo, a *handler.AuthHandler, h *handler.Handler, rdb *redis.Client) {
	// Rate limiting covers the whole surface, including login attempts.
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)
	e.POST("/v1/auth/login", a.Login)

	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(h.Cfg.JWTSecret))

	// List endpoints sit behind the short-TTL response cache; mutating
	// routes are never cached.
	cached := middleware.Cache(config.LoadCacheConfig(), rdb)

	v1.GET("/cinemas", h.ListCinemas, cached)
	v1.POST("/cinemas", h.CreateCinema)
	v1.PUT("/cinemas/:id", h.UpdateCinema)
	v1.DELETE("/cinemas/:id", h.DeleteCinema)

	v1.GET("/suppliers", h.ListSuppliers, cached)
	v1.POST("/suppliers", h.CreateSupplier)
	v1.PUT("/suppliers/:id", h.UpdateSupplier)
	v1.DELETE("/suppliers/:id", h.DeleteSupplier)

	v1.GET("/films", h.ListFilms, cached)
	v1.POST("/films", h.CreateFilm)
	v1.PUT("/films/:id", h.UpdateFilm)
	v1.DELETE("/films/:id", h.DeleteFilm)

	v1.GET("/rentals", h.ListRentals)
	v1.GET("/rentals/active", h.ListActiveRentals)
	v1.POST("/rentals", h.CreateRental)
	v1.POST("/rentals/:id/close", h.CloseRental)
	v1.PATCH("/rentals/:id/penalty-rate", h.SetPenaltyRate)
	v1.DELETE("/rentals/:id", h.DeleteRental)

	v1.POST("/reload", h.Reload)
}
