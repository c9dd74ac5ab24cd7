// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/itspatil/cinebook/internal/handler"
)

// RegisterRoutes registers the API routes on the provided Echo
// instance. The cache middleware wraps only the reference-data reads:
// movies, theaters and showtimes change on reseed only, while seat
// availability and bookings must always hit the store. The rate
// limiter covers the whole /api group. Both middlewares pass through
// when Redis is not configured.
func RegisterRoutes(e *echo.Echo, mh *handler.MovieHandler, th *handler.TheaterHandler, bh *handler.BookingHandler, cache, ratelimit echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.Use(ratelimit)

	api.GET("/movies", mh.ListMovies, cache)
	api.GET("/movies/:id", mh.GetMovie, cache)
	api.GET("/theaters", th.ListTheaters, cache)
	api.GET("/movies/:id/showtimes", mh.ListShowtimes, cache)

	api.GET("/movies/:id/seats", mh.ListSeats)
	api.POST("/bookings", bh.CreateBooking)
	api.GET("/bookings/:id", bh.GetBooking)
}
