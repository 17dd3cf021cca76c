// Package playback keeps the engine's asynchronous event stream and the single-threaded
// UI in agreement: it drains events, tracks play state and owns the playlist mirror.
//
// Everything here runs on the goroutine that owns the UI. The only entry point that is
// safe from other goroutines is Notifier.Notify.
package playback

// Context is the shared play state. One instance lives for the whole session and is
// passed to every component that reads or changes it.
type Context struct {
	// Paused mirrors the engine's pause property, except between a local change and
	// the engine's acknowledgement.
	Paused bool

	// Loaded is true from FileLoaded until the next idle, end of file or shutdown.
	Loaded bool

	EndOfFileReached bool

	// NewFile is set by a fresh load and cleared after the first resize to fit the video.
	NewFile bool

	// InitialLoadPending holds the files given at startup until the first drain.
	InitialLoadPending bool

	Log LogBuffer
}

// NewContext returns the state for a session that starts paused or not.
func NewContext(paused bool) *Context {
	return &Context{Paused: paused}
}
