package frame

import (
	"sync"
	"time"
)

// Callback runs inside a display-refresh frame
type Callback func(now time.Time)

// ID identifies a requested frame callback. The zero ID is never issued.
type ID uint64

// Scheduler defers work to the next display refresh
type Scheduler interface {
	// Request schedules cb for the next frame
	Request(cb Callback) ID
	// Cancel drops a pending callback. Unknown or already run IDs are ignored.
	Cancel(id ID)
}

type pending struct {
	id ID
	cb Callback
}

// queue holds requested callbacks in request order
type queue struct {
	mu     sync.Mutex
	items  []pending
	nextID ID
}

func (q *queue) Request(cb Callback) ID {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	q.items = append(q.items, pending{id: q.nextID, cb: cb})
	return q.nextID
}

func (q *queue) Cancel(id ID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.items {
		if p.id == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of pending callbacks
func (q *queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// run executes the callbacks pending at call time. Callbacks requested while
// running wait for the next frame. It returns how many callbacks ran.
func (q *queue) run(now time.Time) int {
	q.mu.Lock()
	batch := q.items
	q.items = nil
	q.mu.Unlock()

	for _, p := range batch {
		p.cb(now)
	}
	return len(batch)
}

// Manual is a Scheduler whose frames are driven by Flush
type Manual struct {
	queue
}

// NewManual creates a manual scheduler
func NewManual() *Manual {
	return &Manual{}
}

// Flush runs one frame and returns the number of callbacks executed
func (m *Manual) Flush() int {
	return m.run(time.Now())
}

// Pending returns the number of callbacks waiting for a frame
func (m *Manual) Pending() int {
	return m.Len()
}
