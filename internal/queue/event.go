// Package queue implements the booking request pipeline: the bounded
// FIFO request queue, the single-consumer processor that serializes
// every mutation of inventory and ledger state, and the result store
// that lets callers observe the outcome of an asynchronous booking.
package queue

// BookingRequest is the transient payload carried on the request
// queue.  It exists only between submission and consumption and is
// never persisted.
type BookingRequest struct {
	Showtime string `json:"showtime"`
	Seat     string `json:"seat"`
	Name     string `json:"name"`
}

// Status classifies a booking or cancellation outcome.
type Status string

const (
	// StatusPending means the request is queued or being processed.
	StatusPending Status = "pending"
	// StatusSuccess means the operation completed and state changed.
	StatusSuccess Status = "success"
	// StatusError means the operation was rejected; state is unchanged.
	StatusError Status = "error"
)

// BookingResult is the terminal (or pending) outcome of a submitted
// request.  Every booking attempt and every cancellation yields
// exactly one terminal result.
type BookingResult struct {
	Status    Status `json:"status"`
	Message   string `json:"message"`
	Movie     string `json:"movie,omitempty"`
	BookingID uint64 `json:"booking_id,omitempty"`
}

// BookingConfirmedEvent is published to the message broker after a
// booking is confirmed.  It carries enough for downstream consumers to
// log or notify without querying the service.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	Name        string `json:"name"`
	MovieTitle  string `json:"movie_title"`
	Showtime    string `json:"showtime"`
	Seat        string `json:"seat"`
	PurchasedAt string `json:"purchased_at"`
}
