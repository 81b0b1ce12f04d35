package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/bioskop-labs/booking-service/internal/queue"
)

// BookingHandler exposes the booking operations over HTTP: submitting
// a request, polling its result, listing history and cancelling by
// id.  All state access goes through the queue processor; handlers
// never touch inventory or ledger state directly.
type BookingHandler struct {
	Processor *queue.Processor
	validate  *validator.Validate
}

// NewBookingHandler constructs a BookingHandler. The processor must be
// non-nil.
func NewBookingHandler(p *queue.Processor) *BookingHandler {
	if p == nil {
		panic("nil processor passed to NewBookingHandler")
	}
	return &BookingHandler{Processor: p, validate: validator.New()}
}

// bookingPayload is the inbound booking body. Presence validation here
// is surface-level; the consumer re-checks required fields itself.
type bookingPayload struct {
	Showtime string `json:"showtime" validate:"required"`
	Seat     string `json:"seat" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Create handles POST /v1/bookings.  The request is enqueued and a
// 202 Accepted with a result token is returned immediately; the token
// is later exchanged for the terminal result via Result.  A saturated
// queue yields 503 so clients know to back off.
func (h *BookingHandler) Create(c echo.Context) error {
	var body bookingPayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime, seat and name are required"})
	}
	token, err := h.Processor.Submit(queue.BookingRequest{
		Showtime: body.Showtime,
		Seat:     body.Seat,
		Name:     body.Name,
	})
	if err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking queue is full, try again later"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to submit booking"})
	}
	return c.JSON(http.StatusAccepted, echo.Map{
		"status":  "pending",
		"message": "Booking request is being processed.",
		"token":   token,
	})
}

// Result handles GET /v1/bookings/results/:token.  It reports pending
// while the request waits in the queue and the terminal result once
// the consumer has processed it.  Unknown tokens yield 404.
func (h *BookingHandler) Result(c echo.Context) error {
	token := c.Param("token")
	res, ok := h.Processor.Result(token)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown request token"})
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /v1/bookings and returns the booking history in
// insertion order.
func (h *BookingHandler) List(c echo.Context) error {
	bookings := h.Processor.ListBookings()
	out := make([]echo.Map, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, echo.Map{
			"id":            b.ID,
			"name":          b.Name,
			"movie":         b.Movie,
			"showtime":      b.Showtime,
			"seat":          b.Seat,
			"purchase_date": b.PurchaseDate.Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}

// Delete handles DELETE /v1/bookings/:id.  The cancellation is routed
// through the processor queue and the handler waits for its reply, so
// the response carries the terminal result.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": "Invalid booking ID."})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	res, err := h.Processor.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking queue is full, try again later"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancellation timed out"})
	}
	if res.Status == queue.StatusError {
		return c.JSON(http.StatusNotFound, res)
	}
	return c.JSON(http.StatusOK, res)
}
