package repository

import (
	"fmt"

	"github.com/bioskop-labs/booking-service/internal/model"
)

// DefaultShowtimes returns the fixed screening catalog the service
// boots with: four showtimes on the same day, each with a 5x10 seat
// grid (rows A-E, columns 1-10) and a 50 ticket cap.  The formation
// tag is carried for presentation and never consulted by booking
// logic.
func DefaultShowtimes() []*model.Showtime {
	return []*model.Showtime{
		{
			Key:        "2024-06-26 10:00",
			Movie:      "Galaksi Jauh: Petualangan Antar Bintang",
			Seats:      NewSeatMap(),
			MaxTickets: 50,
			Formation:  "teater",
		},
		{
			Key:        "2024-06-26 13:00",
			Movie:      "Legenda Raja Laut: Kembalinya Sang Pahlawan",
			Seats:      NewSeatMap(),
			MaxTickets: 50,
			Formation:  "arena",
		},
		{
			Key:        "2024-06-26 16:00",
			Movie:      "Misteri Pulau Hantu",
			Seats:      NewSeatMap(),
			MaxTickets: 50,
			Formation:  "lurus",
		},
		{
			Key:        "2024-06-26 19:00",
			Movie:      "Petualangan Waktu: Mesin Penjelajah Masa",
			Seats:      NewSeatMap(),
			MaxTickets: 50,
			Formation:  "vip",
		},
	}
}

// NewSeatMap builds a fresh all-available seat map for rows A-E and
// columns 1-10, fifty seats in total.
func NewSeatMap() map[string]bool {
	seats := make(map[string]bool, 50)
	for row := 'A'; row <= 'E'; row++ {
		for num := 1; num <= 10; num++ {
			seats[fmt.Sprintf("%c%d", row, num)] = true
		}
	}
	return seats
}
