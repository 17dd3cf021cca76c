// Package mpris exposes the player on the session bus so desktop media keys and
// widgets can control it.
package mpris

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"

	"github.com/vireo-player/vireo/playback"
)

// Status is the player state shown to the desktop.
type Status struct {
	Playing  bool
	Loaded   bool
	Title    string
	URI      string
	Position float64
	Length   float64
	Volume   float64
	Index    int
	Count    int
}

// Action runs on the UI goroutine against the session's transport controls.
type Action func(c *playback.Controls)

// controller turns bus requests into posted actions and answers queries from the last
// published status. Bus calls arrive on D-Bus goroutines, so nothing here touches the session.
type controller struct {
	post   func(Action)
	status atomic.Pointer[Status]
}

func newController(post func(Action)) *controller {
	c := &controller{post: post}
	c.status.Store(&Status{Volume: 1})
	return c
}

// Publish replaces the status answered to the desktop.
func (c *controller) Publish(s Status) {
	c.status.Store(&s)
}

func (c *controller) snapshot() Status {
	return *c.status.Load()
}

func (c *controller) playPause() {
	c.post(func(p *playback.Controls) { p.TogglePause() })
}

func (c *controller) play() {
	if !c.snapshot().Playing {
		c.playPause()
	}
}

func (c *controller) pause() {
	if c.snapshot().Playing {
		c.playPause()
	}
}

func (c *controller) next() {
	c.post(func(p *playback.Controls) { p.Next() })
}

func (c *controller) previous() {
	c.post(func(p *playback.Controls) { p.Prev() })
}

func (c *controller) seek(seconds float64) {
	c.post(func(p *playback.Controls) { p.Seek(seconds) })
}

func (c *controller) seekTo(seconds float64) {
	c.post(func(p *playback.Controls) { p.SeekTo(seconds) })
}

func (c *controller) setVolume(fraction float64) {
	c.post(func(p *playback.Controls) { p.SetVolume(fraction) })
}

func (c *controller) quit() {
	c.post(func(p *playback.Controls) { p.Quit() })
}

func trackID(uri string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(uri))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
