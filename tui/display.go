package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/playback"
)

var _ playback.View = (*statefulBubble)(nil)

func (b *statefulBubble) SetTitle(title string) {
	b.media.title = title
}

func (b *statefulBubble) SetChapterEnabled(enabled bool) {
	b.media.chapters = enabled
}

func (b *statefulBubble) SetVolume(fraction float64) {
	b.media.volume = fraction
}

// SetSeekBarLength also applies a pending resume position once the first file has a length.
func (b *statefulBubble) SetSeekBarLength(seconds float64) {
	b.media.length = seconds

	if pos, ok := b.resume.Get(); ok && seconds > 0 {
		b.resume = mo.None[float64]()
		if pos < seconds {
			b.session.Controls().SeekTo(pos)
		}
	}
}

func (b *statefulBubble) SetPlaying(playing bool) {
	b.media.playing = playing
}

func (b *statefulBubble) SetControlsEnabled(enabled bool) {
	b.media.active = enabled
}

func (b *statefulBubble) Reset() {
	b.media = media{volume: b.media.volume, active: b.media.active}
}

// ResizeToFit sizes the engine window to the video unless it is embedded in a host window.
func (b *statefulBubble) ResizeToFit(width, height int64, scale float64) {
	b.media.video = [2]int64{width, height}

	if b.options.Setup.WID == 0 {
		b.session.Controls().SetWindowScale(scale)
	}
}

func (b *statefulBubble) ShowError(message string) {
	b.errors = append(b.errors, message)
	b.newState(errorState)
}

func (b *statefulBubble) Quit() {
	b.pending = append(b.pending, tea.Quit)
}
