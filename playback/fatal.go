package playback

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/vireo-player/vireo/log"
)

// FatalHandler receives engine errors that have no recovery path.
type FatalHandler func(err error)

// FatalError is an engine failure that ends the session. Err carries the stack it
// was captured with.
type FatalError struct {
	Err error
}

// Error returns the message without the stack.
func (e *FatalError) Error() string { return "engine API error: " + e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Diagnostic renders the error followed by its call stack.
func (e *FatalError) Diagnostic() string {
	return fmt.Sprintf("engine API error: %+v", e.Err)
}

// ExitOnFatal prints err with its stack trace to stderr and exits with status 1.
func ExitOnFatal(err error) {
	fatal := &FatalError{Err: err}
	log.Error(fatal.Diagnostic())
	_, _ = fmt.Fprintln(os.Stderr, fatal.Diagnostic())
	os.Exit(1)
}

// checker routes failed engine calls to the fatal handler.
type checker struct {
	fatal FatalHandler
}

// ok reports whether err is nil, handing anything else to the fatal handler
// with the caller's stack attached.
func (c checker) ok(err error) bool {
	if err == nil {
		return true
	}

	c.fatal(errors.WithStack(err))
	return false
}
