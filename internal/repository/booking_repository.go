package repository

import (
	"github.com/bioskop-labs/booking-service/internal/model"
)

// BookingRepo is the append-only-with-deletion ledger of confirmed
// bookings.  Every append assigns the next value of a monotonic
// counter as the booking id; ids are never reused, so a displayed id
// cannot silently start pointing at a different booking after an
// unrelated cancellation.  Insertion order is preserved for history
// listings.
//
// Like InventoryRepo, this type does no locking of its own; the queue
// consumer mutates it under the shared state guard and readers copy
// entries out under the guard's read lock.
type BookingRepo struct {
	nextID  uint64
	byID    map[uint64]model.Booking
	ordered []uint64 // ids in insertion order, compacted on remove
}

// NewBookingRepo returns an empty ledger.  Ids start at 1 so that the
// zero value never names a booking.
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{nextID: 1, byID: make(map[uint64]model.Booking)}
}

// Append records a confirmed booking and returns its assigned id.
func (r *BookingRepo) Append(b model.Booking) uint64 {
	id := r.nextID
	r.nextID++
	b.ID = id
	r.byID[id] = b
	r.ordered = append(r.ordered, id)
	return id
}

// Remove deletes the booking with the given id and returns it so the
// caller can release the associated seat.  ErrBookingNotFound is
// returned for unknown or already-removed ids.
func (r *BookingRepo) Remove(id uint64) (model.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	delete(r.byID, id)
	for i, v := range r.ordered {
		if v == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return b, nil
}

// List returns all bookings in insertion order.  The slice and its
// entries are copies; callers may retain them across later mutations.
func (r *BookingRepo) List() []model.Booking {
	out := make([]model.Booking, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.byID[id])
	}
	return out
}

// Len reports the number of bookings currently in the ledger.
func (r *BookingRepo) Len() int {
	return len(r.byID)
}
