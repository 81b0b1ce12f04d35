package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/bioskop-labs/booking-service/internal/handler"
)

// RegisterRoutes registers routes that carry no rate limiting on the
// provided Echo instance. Currently it exposes only a health check for
// load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the booking and availability endpoints
// under /v1. The limiter middleware, when non-nil, is applied to the
// whole group; pass nil to run without rate limiting (tests do this).
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, s *handler.ShowtimeHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if limiter != nil {
		g.Use(limiter)
	}
	// Submit a booking request; the response is an acknowledgement
	// with a token, not the booking outcome.
	g.POST("/bookings", b.Create)
	// Poll the outcome of a submitted request by token.
	g.GET("/bookings/results/:token", b.Result)
	// Booking history in insertion order.
	g.GET("/bookings", b.List)
	// Cancel a booking by its stable ledger id.
	g.DELETE("/bookings/:id", b.Delete)
	// Showtime catalog with ticket counters.
	g.GET("/showtimes", s.List)
	// Per-seat availability of one showtime (key is URL-escaped).
	g.GET("/showtimes/:key/seats", s.Seats)
}
