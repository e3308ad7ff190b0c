package input

// EventKind selects which field of an Event applies.
type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventButton
	EventCursor
)

// Event is a single raw input change.
type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton
	Down   bool
	X, Y   int
}

// KeyEvent returns an event that sets k up or down.
func KeyEvent(k Key, down bool) Event {
	return Event{Kind: EventKey, Key: k, Down: down}
}

// ButtonEvent returns an event that sets b up or down.
func ButtonEvent(b MouseButton, down bool) Event {
	return Event{Kind: EventButton, Button: b, Down: down}
}

// CursorEvent returns an event that moves the cursor.
func CursorEvent(x, y int) Event {
	return Event{Kind: EventCursor, X: x, Y: y}
}

// Apply writes e into r.
func (e Event) Apply(r *Raw) {
	switch e.Kind {
	case EventKey:
		r.SetKey(e.Key, e.Down)
	case EventButton:
		r.SetButton(e.Button, e.Down)
	case EventCursor:
		r.SetCursor(e.X, e.Y)
	}
}

// Queue carries events from a producer goroutine to the frame loop.
//
// One goroutine pushes, the frame loop drains at poll time. Events pushed
// while the queue is full are dropped.
type Queue struct {
	ch chan Event
}

// NewQueue returns a queue holding up to size pending events.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues e. It reports false if the queue was full.
func (q *Queue) Push(e Event) bool {
	select {
	case q.ch <- e:
		return true
	default:
		return false
	}
}

// Drain applies the events pending on entry to r and returns how many were
// applied. Events pushed while draining wait for the next call, so a busy
// producer cannot hold the frame loop here.
func (q *Queue) Drain(r *Raw) int {
	n := len(q.ch)
	for i := 0; i < n; i++ {
		(<-q.ch).Apply(r)
	}
	return n
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.ch) }
