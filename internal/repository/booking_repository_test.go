package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/bioskop-labs/booking-service/internal/model"
)

func testBooking(name, seat string) model.Booking {
	return model.Booking{
		Name:         name,
		Movie:        "Misteri Pulau Hantu",
		Showtime:     "2024-06-26 16:00",
		Seat:         seat,
		PurchaseDate: time.Now(),
	}
}

func TestAppendAssignsMonotonicIDs(t *testing.T) {
	r := NewBookingRepo()
	first := r.Append(testBooking("Sari", "A1"))
	second := r.Append(testBooking("Budi", "A2"))
	if first != 1 || second != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first, second)
	}
}

func TestRemoveReturnsBooking(t *testing.T) {
	r := NewBookingRepo()
	id := r.Append(testBooking("Sari", "A1"))
	b, err := r.Remove(id)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b.Name != "Sari" || b.Seat != "A1" || b.ID != id {
		t.Errorf("unexpected booking %+v", b)
	}
	if r.Len() != 0 {
		t.Errorf("ledger len = %d after remove", r.Len())
	}
}

func TestRemoveUnknownID(t *testing.T) {
	r := NewBookingRepo()
	if _, err := r.Remove(42); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestRemoveTwiceFails(t *testing.T) {
	r := NewBookingRepo()
	id := r.Append(testBooking("Sari", "A1"))
	if _, err := r.Remove(id); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if _, err := r.Remove(id); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("second remove err = %v, want ErrBookingNotFound", err)
	}
}

func TestIDsStableAcrossRemovals(t *testing.T) {
	r := NewBookingRepo()
	a := r.Append(testBooking("Sari", "A1"))
	b := r.Append(testBooking("Budi", "A2"))
	c := r.Append(testBooking("Tono", "A3"))
	if _, err := r.Remove(b); err != nil {
		t.Fatalf("remove middle: %v", err)
	}
	// surviving entries keep their ids
	list := r.List()
	if len(list) != 2 || list[0].ID != a || list[1].ID != c {
		t.Fatalf("unexpected list %+v", list)
	}
	// a freed id is never reassigned
	d := r.Append(testBooking("Wati", "A4"))
	if d == b {
		t.Errorf("id %d was reused after removal", b)
	}
	if d != 4 {
		t.Errorf("next id = %d, want 4", d)
	}
}

func TestListInsertionOrder(t *testing.T) {
	r := NewBookingRepo()
	names := []string{"Sari", "Budi", "Tono"}
	for i, n := range names {
		r.Append(testBooking(n, "A"+string(rune('1'+i))))
	}
	list := r.List()
	if len(list) != len(names) {
		t.Fatalf("list len = %d", len(list))
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Errorf("list[%d].Name = %q, want %q", i, list[i].Name, n)
		}
	}
}

func TestListIsACopy(t *testing.T) {
	r := NewBookingRepo()
	r.Append(testBooking("Sari", "A1"))
	list := r.List()
	list[0].Name = "changed"
	if r.List()[0].Name != "Sari" {
		t.Error("mutating a listed entry leaked into the ledger")
	}
}
