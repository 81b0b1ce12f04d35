package queue

import (
	"context"
	"testing"
	"time"
)

func TestResultStoreLifecycle(t *testing.T) {
	s := NewResultStore()
	token := s.Create()
	res, ok := s.Get(token)
	if !ok || res.Status != StatusPending {
		t.Fatalf("fresh entry = %+v ok=%v", res, ok)
	}

	terminal := BookingResult{Status: StatusSuccess, Message: "Seat successfully booked!", BookingID: 7}
	s.Complete(token, terminal)
	res, ok = s.Get(token)
	if !ok || res != terminal {
		t.Errorf("after complete = %+v ok=%v", res, ok)
	}

	// a terminal result never changes
	s.Complete(token, BookingResult{Status: StatusError, Message: "late overwrite"})
	res, _ = s.Get(token)
	if res != terminal {
		t.Errorf("result changed after second complete: %+v", res)
	}
}

func TestResultStoreAwait(t *testing.T) {
	s := NewResultStore()
	token := s.Create()
	terminal := BookingResult{Status: StatusSuccess, Message: "Seat successfully booked!"}
	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Complete(token, terminal)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := s.Await(ctx, token)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if res != terminal {
		t.Errorf("await = %+v", res)
	}
}

func TestResultStoreAwaitCancelled(t *testing.T) {
	s := NewResultStore()
	token := s.Create()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := s.Await(ctx, token); err != context.DeadlineExceeded {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestResultStoreForget(t *testing.T) {
	s := NewResultStore()
	token := s.Create()
	s.forget(token)
	if _, ok := s.Get(token); ok {
		t.Error("forgotten token still resolves")
	}
}

func TestResultStoreTokensAreUnique(t *testing.T) {
	s := NewResultStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := s.Create()
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true
	}
}
