package engine

import (
	"sync"
	"time"
)

// eventQueue buffers events between the connection's read goroutine and the consumer.
type eventQueue struct {
	mu     sync.Mutex
	items  []Event
	wakeup func()
	signal chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{signal: make(chan struct{}, 1)}
}

func (q *eventQueue) setWakeup(fn func()) {
	q.mu.Lock()
	q.wakeup = fn
	pending := len(q.items) > 0
	q.mu.Unlock()

	if fn != nil && pending {
		fn()
	}
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	fn := q.wakeup
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}

	if fn != nil {
		fn()
	}
}

func (q *eventQueue) pop(timeout time.Duration) Event {
	var deadline <-chan time.Time

	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			ev := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mu.Unlock()
			return ev
		}
		q.mu.Unlock()

		if timeout <= 0 {
			return None{}
		}

		if deadline == nil {
			timer := time.NewTimer(timeout)
			defer timer.Stop()
			deadline = timer.C
		}

		select {
		case <-q.signal:
		case <-deadline:
			return None{}
		}
	}
}
