package playback

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/playlist"
)

// Bridge is the only writer of the playlist mirror. It issues loads to the engine and
// copies the engine's playlist back after each file is opened.
type Bridge struct {
	checker

	ctx    *Context
	engine engine.Client
	view   View
	mirror *playlist.Mirror
}

// NewBridge wires a bridge to mirror. Reorders and removals made on the mirror outside a
// resync are forwarded to the engine.
func NewBridge(ctx *Context, client engine.Client, view View, mirror *playlist.Mirror, fatal FatalHandler) *Bridge {
	b := &Bridge{
		checker: checker{fatal: fatal},
		ctx:     ctx,
		engine:  client,
		view:    view,
		mirror:  mirror,
	}
	mirror.Subscribe(b.onMirrorChange)
	return b
}

// Mirror returns the playlist mirror for reading.
func (b *Bridge) Mirror() *playlist.Mirror {
	return b.mirror
}

// Load opens uri, or re-issues every mirrored entry when uri is absent.
//
// With appendMode the file is queued after the current list, unless the list is empty.
// With updateDisplay the mirror gains an entry for uri before the engine is told to load
// it, and a fresh non-appending load clears the mirror first.
func (b *Bridge) Load(uri mo.Option[string], appendMode, updateDisplay bool) {
	mode := lo.Ternary(appendMode && !b.mirror.IsEmpty(), "append", "replace")

	target, present := uri.Get()
	if !present {
		for i, entry := range b.mirror.URIs() {
			b.Load(mo.Some(entry), i > 0, false)
		}
		return
	}

	if !appendMode && updateDisplay {
		b.mirror.Clear()
		b.ctx.NewFile = true
		b.ctx.Loaded = false
	}

	path := playlist.PathFromURI(target)

	if !appendMode {
		b.ctx.Loaded = false
	}

	if updateDisplay {
		b.mirror.Append(playlist.NameFromPath(path), target)
	}

	b.view.SetControlsEnabled(true)

	log.Debugf("loadfile %s %s", path, mode)

	// A late end-file for the previous item must not be taken for the new one.
	if !b.ok(b.engine.RequestEvent(engine.EventEndFile, false)) {
		return
	}
	if !b.ok(b.engine.Command("loadfile", path, mode)) {
		return
	}
	if !b.ok(b.engine.SetProperty("pause", b.ctx.Paused)) {
		return
	}
	b.ok(b.engine.RequestEvent(engine.EventEndFile, true))
}

// Resync replaces the mirror with the engine's playlist, in the engine's order,
// without notifying mirror listeners.
func (b *Bridge) Resync() {
	items, err := engine.GetPlaylist(b.engine)
	if !b.ok(err) {
		return
	}

	release := b.mirror.Suppress()
	defer release()

	b.mirror.Clear()
	for _, item := range items {
		b.mirror.Append(playlist.NameFromPath(item.Filename), item.Filename)
	}
}

// Move reorders the playlist using the engine's playlist-move convention.
func (b *Bridge) Move(from, to int) error {
	return b.mirror.Move(from, to)
}

// Remove deletes the entry at index from both the mirror and the engine.
func (b *Bridge) Remove(index int) error {
	return b.mirror.Remove(index)
}

// Select makes the engine play the entry at index.
func (b *Bridge) Select(index int) {
	if index < 0 || index >= b.mirror.Len() {
		return
	}

	if !b.ctx.Loaded {
		// Nothing is open, so the engine playlist may be stale; rebuild it and jump.
		b.Load(mo.None[string](), false, false)
	}

	b.ok(b.engine.SetProperty("playlist-pos", index))
}

// SetIndicator marks the entry the engine reports as current.
func (b *Bridge) SetIndicator(index int) {
	b.mirror.SetCurrent(index)
}

// ResetIndicator clears the current marker.
func (b *Bridge) ResetIndicator() {
	b.mirror.ResetCurrent()
}

func (b *Bridge) onMirrorChange(change playlist.Change) {
	switch change.Kind {
	case playlist.Moved:
		b.ok(b.engine.Command("playlist-move", strconv.Itoa(change.Index), strconv.Itoa(change.To)))
	case playlist.Removed:
		b.ok(b.engine.Command("playlist-remove", strconv.Itoa(change.Index)))
	}
}
