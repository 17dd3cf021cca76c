// Package enginetest provides an in-memory engine.Client that records every call.
package enginetest

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/vireo-player/vireo/engine"
)

// Call is one recorded method invocation.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Method, strings.Join(lo.Map(c.Args, func(a any, _ int) string {
		return fmt.Sprint(a)
	}), ", "))
}

// Fake is a scripted engine. Properties answer GetProperty, Fail makes chosen calls
// fail, and Push queues events.
type Fake struct {
	mu sync.Mutex

	calls  []Call
	events []engine.Event
	wakeup func()

	Properties map[string]any
	Options    map[string]string

	// Fail maps "Method" or "Method:name" to the error that call returns.
	Fail map[string]error

	Initialized bool
	Terminated  bool
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		Properties: make(map[string]any),
		Options:    make(map[string]string),
		Fail:       make(map[string]error),
	}
}

var _ engine.Client = (*Fake)(nil)

func (f *Fake) record(method string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Method: method, Args: args})

	if len(args) > 0 {
		if err, ok := f.Fail[fmt.Sprintf("%s:%v", method, args[0])]; ok {
			return err
		}
	}
	return f.Fail[method]
}

func (f *Fake) SetOptionString(name, value string) error {
	if err := f.record("SetOptionString", name, value); err != nil {
		return err
	}

	f.mu.Lock()
	f.Options[name] = value
	f.mu.Unlock()
	return nil
}

func (f *Fake) SetOptionInt64(name string, value int64) error {
	if err := f.record("SetOptionInt64", name, value); err != nil {
		return err
	}

	f.mu.Lock()
	f.Options[name] = fmt.Sprint(value)
	f.mu.Unlock()
	return nil
}

func (f *Fake) ObserveProperty(name string) error {
	return f.record("ObserveProperty", name)
}

func (f *Fake) RequestLogMessages(level engine.LogLevel) error {
	return f.record("RequestLogMessages", level)
}

func (f *Fake) LoadConfigFile(path string) error {
	return f.record("LoadConfigFile", path)
}

func (f *Fake) Initialize() error {
	if err := f.record("Initialize"); err != nil {
		return err
	}

	f.mu.Lock()
	f.Initialized = true
	f.mu.Unlock()
	return nil
}

func (f *Fake) Command(args ...string) error {
	return f.record("Command", lo.ToAnySlice(args)...)
}

func (f *Fake) SetProperty(name string, value any) error {
	if err := f.record("SetProperty", name, value); err != nil {
		return err
	}

	f.mu.Lock()
	f.Properties[name] = value
	f.mu.Unlock()
	return nil
}

func (f *Fake) GetProperty(name string) (any, error) {
	if err := f.record("GetProperty", name); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.Properties[name]
	if !ok {
		return nil, &engine.Error{Op: "get_property", Name: name, Code: "property unavailable"}
	}
	return v, nil
}

func (f *Fake) RequestEvent(kind engine.EventKind, enable bool) error {
	return f.record("RequestEvent", kind, enable)
}

func (f *Fake) WaitEvent(time.Duration) engine.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.events) == 0 {
		return engine.None{}
	}

	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func (f *Fake) SetWakeupCallback(fn func()) {
	f.mu.Lock()
	f.wakeup = fn
	f.mu.Unlock()
}

func (f *Fake) Terminate() error {
	f.mu.Lock()
	f.Terminated = true
	f.mu.Unlock()
	return nil
}

// Push queues events and fires the wakeup callback once per event.
func (f *Fake) Push(events ...engine.Event) {
	for _, ev := range events {
		f.mu.Lock()
		f.events = append(f.events, ev)
		fn := f.wakeup
		f.mu.Unlock()

		if fn != nil {
			fn()
		}
	}
}

// Pending reports how many events are still queued.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// Calls returns a copy of every recorded call.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo returns the recorded calls of one method.
func (f *Fake) CallsTo(method string) []Call {
	return lo.Filter(f.Calls(), func(c Call, _ int) bool {
		return c.Method == method
	})
}

// Commands returns the argument lists of every Command call.
func (f *Fake) Commands() [][]string {
	return lo.Map(f.CallsTo("Command"), func(c Call, _ int) []string {
		return lo.Map(c.Args, func(a any, _ int) string { return a.(string) })
	})
}

// Methods returns the method names of every recorded call, in order.
func (f *Fake) Methods() []string {
	return lo.Map(f.Calls(), func(c Call, _ int) string { return c.Method })
}

// Reset forgets the recorded calls.
func (f *Fake) Reset() {
	f.mu.Lock()
	f.calls = nil
	f.mu.Unlock()
}
