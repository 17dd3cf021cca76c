package playback

import (
	"strconv"

	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/util"
)

// Controls are the transport actions bound to keys and desktop media buttons.
//
// Pause changes go through RefreshDerivedState like every other pause write. Navigation
// commands the engine refuses, such as next on the last entry, are logged and ignored.
type Controls struct {
	ctx    *Context
	engine engine.Client
	sync   *Synchronizer
}

// NewControls returns the transport controls of one session.
func NewControls(ctx *Context, client engine.Client, sync *Synchronizer) *Controls {
	return &Controls{ctx: ctx, engine: client, sync: sync}
}

// TogglePause flips the local pause intent and pushes it. Unpausing with nothing loaded
// makes the engine report pause=false, which restarts the playlist.
func (c *Controls) TogglePause() {
	c.ctx.Paused = !c.ctx.Paused
	c.sync.RefreshDerivedState()
}

// Seek moves playback by delta seconds.
func (c *Controls) Seek(delta float64) {
	c.run("seek", formatFloat(delta), "relative")
}

// SeekTo moves playback to an absolute position in seconds.
func (c *Controls) SeekTo(position float64) {
	c.run("seek", formatFloat(max(position, 0)), "absolute")
}

// SetVolume sets the volume from a fraction in [0, 1].
func (c *Controls) SetVolume(fraction float64) {
	volume := util.Clamp(fraction, 0, 1) * 100
	if err := c.engine.SetProperty("volume", volume); err != nil {
		log.Warnf("set volume %.0f: %s", volume, err)
	}
}

// Chapter and playlist steps fail quietly at either end.
func (c *Controls) NextChapter() { c.run("add", "chapter", "1") }
func (c *Controls) PrevChapter() { c.run("add", "chapter", "-1") }
func (c *Controls) Next() { c.run("playlist-next") }
func (c *Controls) Prev() { c.run("playlist-prev") }

// SetWindowScale sizes the engine's own window relative to the video.
func (c *Controls) SetWindowScale(scale float64) {
	if err := c.engine.SetProperty("window-scale", scale); err != nil {
		log.Warnf("set window scale %.2f: %s", scale, err)
	}
}

// ToggleFullscreen and Screenshot act on the engine's own window.
func (c *Controls) ToggleFullscreen() { c.run("cycle", "fullscreen") }
func (c *Controls) Screenshot() { c.run("screenshot") }

// Quit asks the engine to exit. Teardown follows from its Shutdown event.
func (c *Controls) Quit() { c.run("quit") }

func (c *Controls) run(args ...string) {
	if err := c.engine.Command(args...); err != nil {
		log.Warnf("%s: %s", args[0], err)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
