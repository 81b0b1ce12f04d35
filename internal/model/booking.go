package model

import "time"

// Booking is a confirmed seat reservation recorded in the ledger.
// The ID is assigned by the ledger when the booking is appended; ids
// are monotonic and never reused, so an id handed out to a client
// stays valid until that exact booking is cancelled.  Movie is
// denormalized from the showtime at booking time so history entries
// survive independently of inventory lookups.
//
// Fields:
//  ID           – stable ledger identifier, assigned on append.
//  Name         – customer name as submitted.
//  Movie        – movie title at the time of booking.
//  Showtime     – showtime key the seat belongs to.
//  Seat         – seat code within the showtime.
//  PurchaseDate – wall-clock time the booking was confirmed.
type Booking struct {
	ID           uint64
	Name         string
	Movie        string
	Showtime     string
	Seat         string
	PurchaseDate time.Time
}
