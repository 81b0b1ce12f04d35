package repository

import (
	"github.com/bioskop-labs/booking-service/internal/model"
)

// InventoryRepo owns every Showtime and its seat map.  It is the only
// component allowed to flip seats between available and held or to
// touch sold-ticket counters, so the invariant "sold tickets equals
// held seats" is maintained entirely inside this type.
//
// The repo performs no locking of its own.  All mutating methods are
// called by the queue consumer while it holds the shared state guard,
// the same way row updates run inside a caller-owned transaction; read
// methods copy state out and are called under the guard's read lock.
type InventoryRepo struct {
	showtimes map[string]*model.Showtime
	keys      []string // preserves catalog order for listings
}

// NewInventoryRepo builds an inventory from the given catalog.  The
// slice order is preserved for Keys and listing endpoints.  Showtime
// values are used as-is; callers must not retain references after
// handing them over.
func NewInventoryRepo(catalog []*model.Showtime) *InventoryRepo {
	r := &InventoryRepo{showtimes: make(map[string]*model.Showtime, len(catalog))}
	for _, st := range catalog {
		if _, ok := r.showtimes[st.Key]; ok {
			continue
		}
		r.showtimes[st.Key] = st
		r.keys = append(r.keys, st.Key)
	}
	return r
}

// TryReserve attempts to hold one seat for the given showtime.  On
// success it flips the seat to held, increments the sold-ticket
// counter and returns the movie title for denormalization into the
// ledger.  The two mutations happen together; every failure path
// leaves the inventory untouched.
//
// Failures, in check order: ErrUnknownShowtime for an unknown key,
// ErrInvalidSeat for a seat code outside the showtime's map,
// ErrSoldOut once the ticket cap is reached, ErrSeatTaken when the
// seat is already held.
func (r *InventoryRepo) TryReserve(showtimeKey, seat string) (string, error) {
	st, ok := r.showtimes[showtimeKey]
	if !ok {
		return "", ErrUnknownShowtime
	}
	available, ok := st.Seats[seat]
	if !ok {
		return "", ErrInvalidSeat
	}
	if st.SoldTickets >= st.MaxTickets {
		return "", ErrSoldOut
	}
	if !available {
		return "", ErrSeatTaken
	}
	st.Seats[seat] = false
	st.SoldTickets++
	return st.Movie, nil
}

// Release flips a held seat back to available and decrements the
// sold-ticket counter.  It is called exactly once per cancelled
// booking; calling it for a seat that is already available is a logic
// error in the caller, so the release is refused to keep counters
// consistent with seat state.
func (r *InventoryRepo) Release(showtimeKey, seat string) error {
	st, ok := r.showtimes[showtimeKey]
	if !ok {
		return ErrUnknownShowtime
	}
	available, ok := st.Seats[seat]
	if !ok {
		return ErrInvalidSeat
	}
	if available {
		// already free: refuse rather than corrupt the counter
		return ErrSeatNotHeld
	}
	st.Seats[seat] = true
	st.SoldTickets--
	return nil
}

// Snapshot returns a deep copy of one showtime's availability taken at
// a single point in time.  Callers may hold or mutate the result
// freely.
func (r *InventoryRepo) Snapshot(showtimeKey string) (model.Availability, error) {
	st, ok := r.showtimes[showtimeKey]
	if !ok {
		return model.Availability{}, ErrUnknownShowtime
	}
	seats := make(map[string]bool, len(st.Seats))
	for code, avail := range st.Seats {
		seats[code] = avail
	}
	return model.Availability{
		Showtime:    st.Key,
		Movie:       st.Movie,
		Formation:   st.Formation,
		Seats:       seats,
		SoldTickets: st.SoldTickets,
		MaxTickets:  st.MaxTickets,
	}, nil
}

// Keys returns the showtime keys in catalog order.
func (r *InventoryRepo) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}
