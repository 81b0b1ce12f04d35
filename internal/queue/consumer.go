package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/bioskop-labs/booking-service/internal/model"
	"github.com/bioskop-labs/booking-service/internal/repository"
)

// User-facing result messages. Booking and cancellation outcomes are
// reported with these exact strings.
const (
	msgMissingFields   = "Missing booking information."
	msgSoldOut         = "Maximum number of tickets sold for this showtime."
	msgSeatUnavailable = "Seat already booked or invalid seat."
	msgUnknownShowtime = "Unknown showtime."
	msgBooked          = "Seat successfully booked!"
	msgInvalidBooking  = "Invalid booking ID."
	msgDeleted         = "Booking successfully deleted."
	msgInternal        = "Internal error while processing the request."
)

// Processor is the single consumer of the request queue and the only
// writer of inventory and ledger state.  Bookings and cancellations
// travel through the same queue, so every mutation is ordered into one
// effective sequence; the state guard exists purely so that read-side
// snapshots never observe a logical operation half applied.
//
// Publisher, when set, is invoked after each confirmed booking with a
// BookingConfirmedEvent.  It runs on its own goroutine and its error
// is the publisher's to log; a slow or absent broker never stalls the
// consumer loop.
type Processor struct {
	mu        sync.RWMutex
	queue     *RequestQueue
	inventory *repository.InventoryRepo
	bookings  *repository.BookingRepo
	results   *ResultStore

	Publisher func(context.Context, BookingConfirmedEvent) error
}

// NewProcessor wires the processor to its queue and stores.  All
// arguments must be non-nil.
func NewProcessor(q *RequestQueue, inventory *repository.InventoryRepo, bookings *repository.BookingRepo) *Processor {
	if q == nil || inventory == nil || bookings == nil {
		panic("nil dependency passed to NewProcessor")
	}
	return &Processor{
		queue:     q,
		inventory: inventory,
		bookings:  bookings,
		results:   NewResultStore(),
	}
}

// Run consumes jobs until the context is cancelled.  The receive
// blocks while the queue is empty; there is no polling.  It is meant
// to be started once, on its own goroutine.
func (p *Processor) Run(ctx context.Context) {
	log.Printf("booking-consumer: started (queue capacity %d)", cap(p.queue.jobs))
	for {
		select {
		case <-ctx.Done():
			log.Printf("booking-consumer: stopping: %v", ctx.Err())
			return
		case j := <-p.queue.jobs:
			p.handle(ctx, j)
		}
	}
}

// handle processes one job to its terminal result and delivers it.
func (p *Processor) handle(ctx context.Context, j job) {
	res := p.process(ctx, j)
	switch j.kind {
	case jobBook:
		p.results.Complete(j.token, res)
	case jobCancel:
		j.reply <- res
	}
}

// process runs a single job and converts any panic into an error
// result so one bad request can never halt the queue.
func (p *Processor) process(ctx context.Context, j job) (res BookingResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("booking-consumer: recovered while processing job: %v", r)
			res = BookingResult{Status: StatusError, Message: msgInternal}
		}
	}()
	if j.kind == jobCancel {
		return p.processCancel(j.cancelID)
	}
	return p.processBooking(ctx, j.request)
}

// processBooking validates one request against the inventory and, on
// success, appends a ledger entry.  Reserve and append happen under
// one write-lock acquisition, so no reader can see a held seat without
// its booking or vice versa.
func (p *Processor) processBooking(ctx context.Context, req BookingRequest) BookingResult {
	if req.Showtime == "" || req.Seat == "" || req.Name == "" {
		return BookingResult{Status: StatusError, Message: msgMissingFields}
	}

	now := time.Now()
	movie, id, err := p.applyBooking(req, now)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSoldOut):
			return BookingResult{Status: StatusError, Message: msgSoldOut}
		case errors.Is(err, repository.ErrSeatTaken), errors.Is(err, repository.ErrInvalidSeat):
			return BookingResult{Status: StatusError, Message: msgSeatUnavailable}
		case errors.Is(err, repository.ErrUnknownShowtime):
			return BookingResult{Status: StatusError, Message: msgUnknownShowtime}
		default:
			log.Printf("booking-consumer: unexpected reserve error: %v", err)
			return BookingResult{Status: StatusError, Message: msgInternal}
		}
	}

	if p.Publisher != nil {
		ev := BookingConfirmedEvent{
			BookingID:   id,
			Name:        req.Name,
			MovieTitle:  movie,
			Showtime:    req.Showtime,
			Seat:        req.Seat,
			PurchasedAt: now.UTC().Format(time.RFC3339),
		}
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("booking-consumer: publisher panicked: %v", r)
				}
			}()
			_ = p.Publisher(ctx, ev)
		}()
	}
	return BookingResult{Status: StatusSuccess, Message: msgBooked, Movie: movie, BookingID: id}
}

// applyBooking reserves the seat and appends the ledger entry under
// one write-lock acquisition. The deferred unlock also runs during a
// panic unwind, so a crashing job cannot leave the guard held.
func (p *Processor) applyBooking(req BookingRequest, now time.Time) (string, uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	movie, err := p.inventory.TryReserve(req.Showtime, req.Seat)
	if err != nil {
		return "", 0, err
	}
	id := p.bookings.Append(model.Booking{
		Name:         req.Name,
		Movie:        movie,
		Showtime:     req.Showtime,
		Seat:         req.Seat,
		PurchaseDate: now,
	})
	return movie, id, nil
}

// processCancel removes a ledger entry and releases its seat as one
// atomic unit with respect to readers and other jobs.
func (p *Processor) processCancel(id uint64) BookingResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, err := p.bookings.Remove(id)
	if err != nil {
		return BookingResult{Status: StatusError, Message: msgInvalidBooking}
	}
	if err := p.inventory.Release(b.Showtime, b.Seat); err != nil {
		// The ledger entry existed, so the seat must have been held.
		log.Printf("booking-consumer: release failed for booking %d (%s %s): %v", id, b.Showtime, b.Seat, err)
		return BookingResult{Status: StatusError, Message: msgInternal}
	}
	return BookingResult{Status: StatusSuccess, Message: msgDeleted, BookingID: id}
}

// Submit enqueues a booking request and returns the token callers use
// to observe its outcome.  It never blocks: a saturated queue returns
// ErrQueueFull and no token is issued.
func (p *Processor) Submit(req BookingRequest) (string, error) {
	token := p.results.Create()
	if err := p.queue.enqueue(job{kind: jobBook, token: token, request: req}); err != nil {
		p.results.forget(token)
		return "", err
	}
	return token, nil
}

// Result reports the current outcome for a submission token: pending
// until the consumer has processed the request, then the terminal
// result.  The second return is false for tokens that were never
// issued.
func (p *Processor) Result(token string) (BookingResult, bool) {
	return p.results.Get(token)
}

// Await blocks until the token's result is terminal or ctx is
// cancelled.
func (p *Processor) Await(ctx context.Context, token string) (BookingResult, error) {
	return p.results.Await(ctx, token)
}

// Cancel routes a cancellation through the same queue as bookings and
// waits for the consumer's reply, so the caller gets a synchronous
// result while the mutation shares the booking serialization point.
func (p *Processor) Cancel(ctx context.Context, id uint64) (BookingResult, error) {
	reply := make(chan BookingResult, 1)
	if err := p.queue.enqueue(job{kind: jobCancel, cancelID: id, reply: reply}); err != nil {
		return BookingResult{}, err
	}
	select {
	case <-ctx.Done():
		return BookingResult{}, ctx.Err()
	case res := <-reply:
		return res, nil
	}
}

// ListBookings returns the ledger history in insertion order.
func (p *Processor) ListBookings() []model.Booking {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.bookings.List()
}

// Availability returns a consistent snapshot of one showtime.
func (p *Processor) Availability(showtimeKey string) (model.Availability, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inventory.Snapshot(showtimeKey)
}

// Showtimes returns snapshots of the whole catalog, taken under a
// single read-lock acquisition so the set is mutually consistent.
func (p *Processor) Showtimes() []model.Availability {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := p.inventory.Keys()
	out := make([]model.Availability, 0, len(keys))
	for _, key := range keys {
		snap, err := p.inventory.Snapshot(key)
		if err != nil {
			continue
		}
		out = append(out, snap)
	}
	return out
}
