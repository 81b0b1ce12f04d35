// Package repository defines the in-memory stores that own all booking
// state: the seat inventory and the booking ledger. The sentinel
// errors below are shared by both stores so that higher layers such as
// the queue consumer and the handlers can distinguish failure
// scenarios with errors.Is and translate them into user-facing
// results.
package repository

import "errors"

// ErrUnknownShowtime is returned when an operation names a showtime
// key that does not exist in the inventory.
var ErrUnknownShowtime = errors.New("unknown showtime")

// ErrInvalidSeat is returned when a seat code does not exist in the
// showtime's seat map.
var ErrInvalidSeat = errors.New("invalid seat")

// ErrSeatTaken is returned when the requested seat exists but is
// already held by a previous booking.
var ErrSeatTaken = errors.New("seat already booked")

// ErrSoldOut is returned when the showtime has reached its ticket cap.
// No seat state is touched when this is reported.
var ErrSoldOut = errors.New("showtime sold out")

// ErrSeatNotHeld is returned by Release when the seat is already
// available. It signals a caller logic error (a double release), never
// a user-facing condition.
var ErrSeatNotHeld = errors.New("seat not held")

// ErrBookingNotFound is returned when a ledger id is unknown or the
// booking was already removed.
var ErrBookingNotFound = errors.New("booking not found")
