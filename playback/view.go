package playback

// View is the presentation surface the session pushes derived state into.
// All methods are called on the goroutine that owns the UI.
type View interface {
	SetTitle(title string)
	SetChapterEnabled(enabled bool)
	// SetVolume takes a fraction in [0, 1].
	SetVolume(fraction float64)
	SetSeekBarLength(seconds float64)
	SetPlaying(playing bool)
	SetControlsEnabled(enabled bool)

	// Reset returns the media display to its idle look.
	Reset()
	ResizeToFit(width, height int64, scale float64)
	ShowError(message string)
	Quit()
}
