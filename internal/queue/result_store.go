package queue

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ResultStore tracks the outcome of every submitted booking request,
// keyed by an opaque token handed back at submission time.  An entry
// starts pending and transitions to a terminal result exactly once;
// terminal results stay readable for the process lifetime so repeated
// polls of the same token are stable.
type ResultStore struct {
	mu      sync.Mutex
	entries map[string]*resultEntry
}

type resultEntry struct {
	result BookingResult
	done   chan struct{}
}

// NewResultStore returns an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{entries: make(map[string]*resultEntry)}
}

// Create registers a new pending entry and returns its token.
func (s *ResultStore) Create() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.entries[token] = &resultEntry{
		result: BookingResult{Status: StatusPending, Message: "Booking request is being processed."},
		done:   make(chan struct{}),
	}
	s.mu.Unlock()
	return token
}

// Complete records the terminal result for a token and wakes any
// waiter.  Completing an unknown or already-terminal token is a no-op;
// a result never changes once set.
func (s *ResultStore) Complete(token string, r BookingResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok || e.result.Status != StatusPending {
		return
	}
	e.result = r
	close(e.done)
}

// Get returns the current result for a token.  The second return is
// false when the token was never issued.
func (s *ResultStore) Get(token string) (BookingResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return BookingResult{}, false
	}
	return e.result, true
}

// Await blocks until the token's result is terminal or the context is
// cancelled.  It is the promise-handle counterpart to polling Get.
func (s *ResultStore) Await(ctx context.Context, token string) (BookingResult, error) {
	s.mu.Lock()
	e, ok := s.entries[token]
	s.mu.Unlock()
	if !ok {
		return BookingResult{}, ErrUnknownToken
	}
	select {
	case <-ctx.Done():
		return BookingResult{}, ctx.Err()
	case <-e.done:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return e.result, nil
}

// forget drops an entry whose job was never enqueued.
func (s *ResultStore) forget(token string) {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
}
