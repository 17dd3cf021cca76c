package engine

import (
	"errors"
	"fmt"
)

// Codes reported by the engine for failed requests.
const (
	codeSuccess             = "success"
	codePropertyUnavailable = "property unavailable"
	codePropertyNotFound    = "property not found"
)

var (
	// ErrPropertyUnavailable reports a property that exists but has no value right now,
	// e.g. media-title while nothing is loaded.
	ErrPropertyUnavailable = errors.New(codePropertyUnavailable)

	// ErrClosed is returned once the connection to the engine is gone.
	ErrClosed = errors.New("engine connection closed")

	// ErrNotCreated is returned for calls made before Create.
	ErrNotCreated = errors.New("engine handle not created")
)

// Error is a failed engine request. It plays the role of a negative API status.
type Error struct {
	Op   string
	Name string
	Code string
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Name, e.Code)
}

// Is matches ErrPropertyUnavailable for both unavailable and unknown properties.
func (e *Error) Is(target error) bool {
	if target != ErrPropertyUnavailable {
		return false
	}
	return e.Code == codePropertyUnavailable || e.Code == codePropertyNotFound
}
