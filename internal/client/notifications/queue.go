// Package notifications holds the process-wide queue of transient user
// feedback. Every asynchronous operation ends by pushing either a success or
// an error entry here; entries expire on their own after a fixed delay.
package notifications

import (
	"sync"
	"time"
)

// Kind classifies a notification for display purposes.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultTTL is how long an entry stays visible unless configured otherwise.
const DefaultTTL = 4 * time.Second

// Notification is one feedback entry. IDs are strictly increasing, so two
// pushes in the same instant never collide.
type Notification struct {
	ID      int64
	Message string
	Kind    Kind
}

// Listener is invoked synchronously for every pushed entry.
type Listener func(Notification)

type Option func(*Queue)

// WithListener registers a display hook called on each push.
func WithListener(fn Listener) Option {
	return func(q *Queue) { q.listener = fn }
}

// Queue is an ordered container of active notifications. Each entry schedules
// its own removal; expiry of one entry never reorders or affects the others.
// Safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	ttl      time.Duration
	nextID   int64
	active   []Notification
	timers   map[int64]*time.Timer
	listener Listener
	closed   bool
}

// NewQueue builds a queue whose entries expire after ttl. A non-positive ttl
// falls back to DefaultTTL.
func NewQueue(ttl time.Duration, opts ...Option) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	q := &Queue{ttl: ttl, timers: make(map[int64]*time.Timer)}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends an entry and schedules its removal. The returned value carries
// the assigned id.
func (q *Queue) Push(message string, kind Kind) Notification {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Notification{}
	}

	q.nextID++
	n := Notification{ID: q.nextID, Message: message, Kind: kind}
	q.active = append(q.active, n)
	q.timers[n.ID] = time.AfterFunc(q.ttl, func() { q.remove(n.ID) })
	listener := q.listener
	q.mu.Unlock()

	if listener != nil {
		listener(n)
	}
	return n
}

// Success pushes a success entry.
func (q *Queue) Success(message string) Notification {
	return q.Push(message, KindSuccess)
}

// Error pushes an error entry.
func (q *Queue) Error(message string) Notification {
	return q.Push(message, KindError)
}

// Dismiss removes an entry before its timer fires. Unknown ids are ignored.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
	}
	q.mu.Unlock()
	q.remove(id)
}

// Active returns the current entries in insertion order.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.active))
	copy(out, q.active)
	return out
}

// Close stops all pending timers and drops remaining entries. Pushes after
// Close are no-ops, so a late timer can never reference a torn-down queue.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.active = nil
}

func (q *Queue) remove(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.timers, id)
	for i, n := range q.active {
		if n.ID == id {
			q.active = append(q.active[:i], q.active[i+1:]...)
			return
		}
	}
}
