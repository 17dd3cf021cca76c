//go:build linux

package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/vireo-player/vireo/constant"
	"github.com/vireo-player/vireo/log"
)

// Adapter serves org.mpris.MediaPlayer2 for one session.
type Adapter struct {
	*controller
	server *server.Server
}

// New starts serving on the session bus. post must hand actions to the UI goroutine.
func New(post func(Action)) (*Adapter, error) {
	c := newController(post)

	a := &Adapter{
		controller: c,
		server:     server.NewServer(constant.Vireo, &rootAdapter{c}, &playerAdapter{c}),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warnf("mpris: %s", err)
		}
	}()

	return a, nil
}

// Close stops serving and releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

type rootAdapter struct {
	c *controller
}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error {
	r.c.quit()
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) { return true, nil }
func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error) { return "Vireo", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "video/mp4", "video/x-matroska", "video/webm"}, nil
}

type playerAdapter struct {
	c *controller
}

func (p *playerAdapter) Next() error {
	p.c.next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.c.previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.c.pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.c.playPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.c.pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.c.play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.c.seek((time.Duration(offset) * time.Microsecond).Seconds())
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.c.seekTo((time.Duration(position) * time.Microsecond).Seconds())
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.c.snapshot()
	switch {
	case !s.Loaded:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.c.snapshot()
	if !s.Loaded {
		return types.Metadata{}, nil
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(trackID(s.URI)),
		Length:  types.Microseconds(seconds(s.Length).Microseconds()),
		Title:   s.Title,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.c.snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(volume float64) error {
	p.c.setVolume(volume)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return seconds(p.c.snapshot().Position).Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) {
	s := p.c.snapshot()
	return s.Index+1 < s.Count, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.c.snapshot().Index > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.c.snapshot().Count > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error) { return p.c.snapshot().Loaded, nil }
func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
