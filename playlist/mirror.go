// Package playlist holds the on-screen copy of the engine's playlist.
package playlist

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Entry is one playlist item as shown to the user.
type Entry struct {
	// Name is a display name derived from the path, never the path itself.
	Name    string
	URI     string
	Current bool
}

// ChangeKind says what a Change did to the mirror.
type ChangeKind int

const (
	Appended ChangeKind = iota
	Cleared
	Moved
	Removed
	CurrentChanged
)

func (k ChangeKind) String() string {
	switch k {
	case Appended:
		return "appended"
	case Cleared:
		return "cleared"
	case Moved:
		return "moved"
	case Removed:
		return "removed"
	case CurrentChanged:
		return "current-changed"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is a notification sent to listeners after a mutation.
// For Moved, Index is the source and To the engine-style destination.
type Change struct {
	Kind  ChangeKind
	Index int
	To    int
}

// Listener receives mirror changes.
type Listener func(Change)

// Mirror is an ordered list of entries with change notifications that can be
// suppressed while the owner itself rewrites the list. It is not safe for concurrent
// use; a single goroutine owns it.
type Mirror struct {
	entries    []Entry
	listeners  []Listener
	suppressed int
}

// NewMirror returns an empty mirror.
func NewMirror() *Mirror {
	return &Mirror{}
}

// Subscribe registers l for every unsuppressed change.
func (m *Mirror) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Suppress silences notifications until release is called. Guards nest, and calling
// release more than once has no further effect.
func (m *Mirror) Suppress() (release func()) {
	m.suppressed++

	var once sync.Once
	return func() {
		once.Do(func() { m.suppressed-- })
	}
}

// Suppressed reports whether a guard is currently held.
func (m *Mirror) Suppressed() bool {
	return m.suppressed > 0
}

func (m *Mirror) notify(c Change) {
	if m.Suppressed() {
		return
	}

	for _, l := range m.listeners {
		l(c)
	}
}

// Append adds an entry at the end and returns its index.
func (m *Mirror) Append(name, uri string) int {
	m.entries = append(m.entries, Entry{Name: name, URI: uri})

	index := len(m.entries) - 1
	m.notify(Change{Kind: Appended, Index: index})
	return index
}

// Clear removes every entry.
func (m *Mirror) Clear() {
	m.entries = nil
	m.notify(Change{Kind: Cleared, Index: -1})
}

// Move relocates the entry at from so that it takes the place of the entry currently at
// to, shifting that entry and the ones after it down. to may equal Len to move to the end.
// This is the engine's playlist-move convention: moving forward lands at to-1.
func (m *Mirror) Move(from, to int) error {
	if from < 0 || from >= len(m.entries) {
		return fmt.Errorf("move: source index %d out of range [0, %d)", from, len(m.entries))
	}
	if to < 0 || to > len(m.entries) {
		return fmt.Errorf("move: destination index %d out of range [0, %d]", to, len(m.entries))
	}
	if from == to || from+1 == to {
		return nil
	}

	entry := m.entries[from]
	rest := append(m.entries[:from:from], m.entries[from+1:]...)

	dest := lo.Ternary(to > from, to-1, to)
	m.entries = append(rest[:dest:dest], append([]Entry{entry}, rest[dest:]...)...)

	m.notify(Change{Kind: Moved, Index: from, To: to})
	return nil
}

// Remove deletes the entry at index.
func (m *Mirror) Remove(index int) error {
	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("remove: index %d out of range [0, %d)", index, len(m.entries))
	}

	m.entries = append(m.entries[:index:index], m.entries[index+1:]...)
	m.notify(Change{Kind: Removed, Index: index})
	return nil
}

// SetCurrent marks the entry at index as the current one. Out of range indexes clear the marker.
func (m *Mirror) SetCurrent(index int) {
	for i := range m.entries {
		m.entries[i].Current = i == index
	}
	m.notify(Change{Kind: CurrentChanged, Index: index})
}

// ResetCurrent clears the current marker.
func (m *Mirror) ResetCurrent() {
	m.SetCurrent(-1)
}

// Entries returns a copy of the entries in order.
func (m *Mirror) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Entry returns the entry at index.
func (m *Mirror) Entry(index int) (Entry, bool) {
	if index < 0 || index >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[index], true
}

// Len returns the number of entries.
func (m *Mirror) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the mirror has no entries.
func (m *Mirror) IsEmpty() bool {
	return len(m.entries) == 0
}

// URIs returns the URIs of every entry in order.
func (m *Mirror) URIs() []string {
	return lo.Map(m.entries, func(e Entry, _ int) string { return e.URI })
}

// Current returns the index of the current entry, if any.
func (m *Mirror) Current() mo.Option[int] {
	_, index, ok := lo.FindIndexOf(m.entries, func(e Entry) bool { return e.Current })
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(index)
}
