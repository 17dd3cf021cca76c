package playback

import (
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/log"
)

// Synchronizer pushes state derived from the engine into the view.
type Synchronizer struct {
	checker

	ctx    *Context
	engine engine.Client
	view   View
	bridge *Bridge
}

// NewSynchronizer returns a Synchronizer sending failed engine calls to fatal.
func NewSynchronizer(ctx *Context, client engine.Client, view View, bridge *Bridge, fatal FatalHandler) *Synchronizer {
	return &Synchronizer{
		checker: checker{fatal: fatal},
		ctx:     ctx,
		engine:  client,
		view:    view,
		bridge:  bridge,
	}
}

// RefreshDerivedState writes Paused to the engine, then reads the title, playlist
// position, chapter count, volume and length and pushes them to the view. A read that
// fails leaves its field alone.
func (s *Synchronizer) RefreshDerivedState() {
	if !s.ok(s.engine.SetProperty("pause", s.ctx.Paused)) {
		return
	}

	if title, err := engine.GetString(s.engine, "media-title"); err == nil && title != "" {
		s.view.SetTitle(title)
	} else if err != nil {
		log.Tracef("media-title: %s", err)
	}

	if pos, err := engine.GetInt64(s.engine, "playlist-pos"); err == nil {
		s.bridge.SetIndicator(int(pos))
	}

	if chapters, err := engine.GetInt64(s.engine, "chapters"); err == nil {
		s.view.SetChapterEnabled(chapters > 1)
	}

	if volume, err := engine.GetFloat64(s.engine, "volume"); err == nil {
		s.view.SetVolume(volume / 100)
	}

	if length, err := engine.GetFloat64(s.engine, "length"); err == nil {
		s.view.SetSeekBarLength(length)
	}

	s.view.SetPlaying(!s.ctx.Paused)
}

// Position returns the playback position in seconds while a file is loaded.
func (s *Synchronizer) Position() mo.Option[float64] {
	if !s.ctx.Loaded {
		return mo.None[float64]()
	}

	pos, err := engine.GetFloat64(s.engine, "time-pos")
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(pos)
}
