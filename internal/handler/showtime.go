package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/bioskop-labs/booking-service/internal/queue"
	"github.com/bioskop-labs/booking-service/internal/repository"
)

// ShowtimeHandler exposes read-only availability views.  Snapshots
// come from the processor's read path, so a response never reflects a
// half-applied booking or cancellation.
type ShowtimeHandler struct {
	Processor *queue.Processor
}

// NewShowtimeHandler constructs a ShowtimeHandler. The processor must
// be non-nil.
func NewShowtimeHandler(p *queue.Processor) *ShowtimeHandler {
	if p == nil {
		panic("nil processor passed to NewShowtimeHandler")
	}
	return &ShowtimeHandler{Processor: p}
}

// List handles GET /v1/showtimes and returns the catalog with ticket
// counters, in catalog order. Seat maps are omitted here; clients
// fetch them per showtime via Seats.
func (h *ShowtimeHandler) List(c echo.Context) error {
	snaps := h.Processor.Showtimes()
	out := make([]echo.Map, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, echo.Map{
			"showtime":     s.Showtime,
			"movie":        s.Movie,
			"formation":    s.Formation,
			"sold_tickets": s.SoldTickets,
			"max_tickets":  s.MaxTickets,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"showtimes": out})
}

// Seats handles GET /v1/showtimes/:key/seats.  Showtime keys contain
// spaces ("2024-06-26 10:00"), so the path segment arrives
// URL-escaped.
func (h *ShowtimeHandler) Seats(c echo.Context) error {
	key := c.Param("key")
	if decoded, err := url.PathUnescape(key); err == nil {
		key = decoded
	}
	snap, err := h.Processor.Availability(key)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownShowtime) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load availability"})
	}
	return c.JSON(http.StatusOK, snap)
}
