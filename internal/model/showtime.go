package model

// Showtime is a scheduled screening together with its seat inventory.
// A showtime is identified by a timestamp-like key such as
// "2024-06-26 10:00".  Seats maps seat codes (row letter + column
// number, e.g. "B7") to availability: true means the seat can still be
// booked.  SoldTickets always equals the number of seats currently
// marked unavailable and never exceeds MaxTickets.
//
// Fields:
//  Key         – showtime identifier, opaque to booking logic.
//  Movie       – title of the movie being screened.
//  Seats       – seat code -> available flag.
//  SoldTickets – number of tickets sold so far.
//  MaxTickets  – ticket cap for this showtime.
//  Formation   – seating-layout tag used only by presentation.
type Showtime struct {
	Key         string
	Movie       string
	Seats       map[string]bool
	SoldTickets int
	MaxTickets  int
	Formation   string
}

// Availability is a read-only view of one showtime handed out to
// callers for rendering.  It is always a deep copy taken at a single
// consistent point in time; mutating it has no effect on the
// underlying inventory.
type Availability struct {
	Showtime    string          `json:"showtime"`
	Movie       string          `json:"movie"`
	Formation   string          `json:"formation"`
	Seats       map[string]bool `json:"seats"`
	SoldTickets int             `json:"sold_tickets"`
	MaxTickets  int             `json:"max_tickets"`
}
