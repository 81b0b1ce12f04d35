package queue

import "errors"

// ErrQueueFull is returned by Submit and Cancel when the request queue
// has reached capacity.  Callers should report backpressure (HTTP 503)
// rather than block the producer.
var ErrQueueFull = errors.New("request queue full")

// ErrUnknownToken is returned when a result is requested for a token
// that was never issued by Submit.
var ErrUnknownToken = errors.New("unknown request token")

// jobKind selects the consumer's code path for a job.
type jobKind int

const (
	jobBook jobKind = iota
	jobCancel
)

// job is one unit of work on the request queue.  Booking jobs carry
// the request plus the result token; cancel jobs carry the ledger id
// and a buffered reply channel so the caller can wait synchronously.
type job struct {
	kind     jobKind
	token    string
	request  BookingRequest
	cancelID uint64
	reply    chan BookingResult
}

// RequestQueue is a bounded FIFO of booking and cancellation jobs with
// many producers and exactly one consumer.  There is no priority and
// no deduplication; jobs are delivered strictly in arrival order.
type RequestQueue struct {
	jobs chan job
}

// NewRequestQueue returns a queue with the given capacity.  A
// non-positive capacity falls back to 1 so enqueue semantics stay
// non-blocking.
func NewRequestQueue(capacity int) *RequestQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &RequestQueue{jobs: make(chan job, capacity)}
}

// enqueue adds a job without blocking.  ErrQueueFull is returned when
// the queue is saturated.
func (q *RequestQueue) enqueue(j job) error {
	select {
	case q.jobs <- j:
		return nil
	default:
		return ErrQueueFull
	}
}

// Len reports the number of jobs currently waiting.
func (q *RequestQueue) Len() int {
	return len(q.jobs)
}
