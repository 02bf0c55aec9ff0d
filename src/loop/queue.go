package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrQueueClosed = errors.New("event queue closed")

//Queue is the unbounded multiple producer, single consumer FIFO of events
//events are delivered in the order Push was called, whatever goroutine called it
type Queue struct {
	mu     sync.Mutex
	events []Event
	closed bool
	err    error
	ready  chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

//Push appends the event, never blocks
//returns false when the queue is closed and the event is dropped
func (q *Queue) Push(ev Event) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()
	q.signal()
	return true
}

//Close marks the stream as broken, the events pushed before are still delivered
//only the first call has effect
func (q *Queue) Close(cause error) {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		if cause != nil {
			q.err = fmt.Errorf("%w: %w", ErrQueueClosed, cause)
		} else {
			q.err = ErrQueueClosed
		}
	}
	q.mu.Unlock()
	q.signal()
}

//Pop waits for the next event
//it returns the close error once the queue is closed and drained, or ctx.Err() when ctx is done
//Pop must be called from a single goroutine
func (q *Queue) Pop(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.events) > 0 {
			ev := q.events[0]
			q.events = q.events[1:]
			q.mu.Unlock()
			return ev, nil
		}
		if q.closed {
			err := q.err
			q.mu.Unlock()
			return Event{}, err
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-q.ready:
		}
	}
}

//Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
