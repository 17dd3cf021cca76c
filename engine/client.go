// Package engine drives the external media engine: a handle that accepts options before
// initialization, commands and property reads after it, and hands back a queue of events.
package engine

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Client is the command/property/event surface of a media engine handle.
// Every method except SetWakeupCallback may block on a round trip to the engine.
type Client interface {
	// SetOptionString sets an option by name. Before Initialize it configures startup.
	SetOptionString(name, value string) error
	SetOptionInt64(name string, value int64) error

	// ObserveProperty subscribes to change notifications for name.
	ObserveProperty(name string) error
	RequestLogMessages(level LogLevel) error
	LoadConfigFile(path string) error
	Initialize() error

	Command(args ...string) error
	SetProperty(name string, value any) error
	GetProperty(name string) (any, error)

	// RequestEvent enables or disables delivery of one event kind.
	RequestEvent(kind EventKind, enable bool) error

	// WaitEvent returns the next queued event, or None if nothing arrives within timeout.
	// A zero timeout never blocks.
	WaitEvent(timeout time.Duration) Event

	// SetWakeupCallback registers fn to be called, from any goroutine, whenever the
	// event queue goes from empty to non-empty.
	SetWakeupCallback(fn func())

	Terminate() error
}

// PlaylistItem is one element of the engine's playlist property.
type PlaylistItem struct {
	Filename string
	Title    string
	Current  bool
}

// GetString reads a string property.
func GetString(c Client, name string) (string, error) {
	v, err := c.GetProperty(name)
	if err != nil {
		return "", err
	}

	switch s := v.(type) {
	case string:
		return s, nil
	case nil:
		return "", &Error{Op: "get property", Name: name, Code: codePropertyUnavailable}
	default:
		return fmt.Sprint(s), nil
	}
}

// GetFlag reads a boolean property.
func GetFlag(c Client, name string) (bool, error) {
	v, err := c.GetProperty(name)
	if err != nil {
		return false, err
	}

	b, ok := v.(bool)
	if !ok {
		return false, typeError(name, "flag", v)
	}
	return b, nil
}

// GetInt64 reads an integer property.
func GetInt64(c Client, name string) (int64, error) {
	v, err := c.GetProperty(name)
	if err != nil {
		return 0, err
	}

	n, ok := AsFloat(v)
	if !ok {
		return 0, typeError(name, "int64", v)
	}
	return int64(n), nil
}

// GetFloat64 reads a floating point property.
func GetFloat64(c Client, name string) (float64, error) {
	v, err := c.GetProperty(name)
	if err != nil {
		return 0, err
	}

	n, ok := AsFloat(v)
	if !ok {
		return 0, typeError(name, "double", v)
	}
	return n, nil
}

// GetPlaylist reads the engine's playlist.
func GetPlaylist(c Client) ([]PlaylistItem, error) {
	v, err := c.GetProperty("playlist")
	if err != nil {
		return nil, err
	}

	switch list := v.(type) {
	case []PlaylistItem:
		return list, nil
	case []any:
		items := make([]PlaylistItem, 0, len(list))
		for _, raw := range list {
			node, ok := raw.(map[string]any)
			if !ok {
				return nil, typeError("playlist", "node map", raw)
			}

			filename, _ := node["filename"].(string)
			title, _ := node["title"].(string)
			current, _ := node["current"].(bool)
			items = append(items, PlaylistItem{Filename: filename, Title: title, Current: current})
		}
		return items, nil
	case nil:
		return nil, nil
	default:
		return nil, typeError("playlist", "node array", v)
	}
}

// AsFloat converts the numeric shapes a property value may take.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsFlag reports v as a boolean, treating anything that is not true as false.
func AsFlag(v any) bool {
	b, _ := v.(bool)
	return b
}

func typeError(name, want string, got any) error {
	return &Error{
		Op:   "get property",
		Name: name,
		Code: fmt.Sprintf("expected %s, got %s", want, lo.Ternary(got == nil, "nothing", fmt.Sprintf("%T", got))),
	}
}
