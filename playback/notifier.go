package playback

import "sync/atomic"

// Notifier turns any number of engine wakeups into at most one scheduled drain.
type Notifier struct {
	pending  atomic.Bool
	schedule func()
}

// NewNotifier returns a notifier that calls schedule when a drain is needed.
// schedule must not block or touch session state; it only arranges for Drain to run
// on the UI goroutine.
func NewNotifier(schedule func()) *Notifier {
	return &Notifier{schedule: schedule}
}

// Notify may be called from any goroutine.
func (n *Notifier) Notify() {
	if n.pending.CompareAndSwap(false, true) && n.schedule != nil {
		n.schedule()
	}
}

// Clear re-arms the notifier. Call it before draining so events that arrive during the
// drain schedule another one.
func (n *Notifier) Clear() {
	n.pending.Store(false)
}

// Pending reports whether a drain is scheduled and has not started yet.
func (n *Notifier) Pending() bool {
	return n.pending.Load()
}
