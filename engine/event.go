package engine

// EventKind names an engine event class. The string form is the engine's own event name.
type EventKind string

const (
	EventNone            EventKind = "none"
	EventShutdown        EventKind = "shutdown"
	EventLogMessage      EventKind = "log-message"
	EventStartFile       EventKind = "start-file"
	EventEndFile         EventKind = "end-file"
	EventFileLoaded      EventKind = "file-loaded"
	EventIdle            EventKind = "idle"
	EventVideoReconfig   EventKind = "video-reconfig"
	EventAudioReconfig   EventKind = "audio-reconfig"
	EventSeek            EventKind = "seek"
	EventPlaybackRestart EventKind = "playback-restart"
	EventPropertyChange  EventKind = "property-change"
)

// Event is a single engine notification. Consumers switch on it through Dispatch,
// so a Handler that misses a variant does not compile.
type Event interface {
	Kind() EventKind
	Dispatch(h Handler)
}

// Handler receives one callback per event variant.
type Handler interface {
	OnNone()
	OnShutdown()
	OnLogMessage(ev LogMessage)
	OnStartFile()
	OnEndFile(ev EndFile)
	OnFileLoaded()
	OnIdle()
	OnVideoReconfig()
	OnPlaybackRestart()
	OnPropertyChange(ev PropertyChange)
	OnOther(kind EventKind)
}

// None means the queue is empty.
type None struct{}

type Shutdown struct{}

type LogMessage struct {
	Prefix string
	Level  LogLevel
	Text   string
}

type StartFile struct{}

type EndFile struct {
	Reason string
}

type FileLoaded struct{}

type Idle struct{}

type VideoReconfig struct{}

type PlaybackRestart struct{}

// PropertyChange carries the new value of an observed property. Value is nil when
// the property became unavailable.
type PropertyChange struct {
	Name  string
	Value any
}

// Other is any event the session does not react to.
type Other struct {
	Name EventKind
}

// Kind and Dispatch make every variant an Event.

func (None) Kind() EventKind { return EventNone }
func (Shutdown) Kind() EventKind { return EventShutdown }
func (LogMessage) Kind() EventKind { return EventLogMessage }
func (StartFile) Kind() EventKind { return EventStartFile }
func (EndFile) Kind() EventKind { return EventEndFile }
func (FileLoaded) Kind() EventKind { return EventFileLoaded }
func (Idle) Kind() EventKind { return EventIdle }
func (VideoReconfig) Kind() EventKind { return EventVideoReconfig }
func (PlaybackRestart) Kind() EventKind { return EventPlaybackRestart }
func (PropertyChange) Kind() EventKind { return EventPropertyChange }
func (e Other) Kind() EventKind { return e.Name }

func (None) Dispatch(h Handler) { h.OnNone() }
func (Shutdown) Dispatch(h Handler) { h.OnShutdown() }
func (e LogMessage) Dispatch(h Handler) { h.OnLogMessage(e) }
func (StartFile) Dispatch(h Handler) { h.OnStartFile() }
func (e EndFile) Dispatch(h Handler) { h.OnEndFile(e) }
func (FileLoaded) Dispatch(h Handler) { h.OnFileLoaded() }
func (Idle) Dispatch(h Handler) { h.OnIdle() }
func (VideoReconfig) Dispatch(h Handler) { h.OnVideoReconfig() }
func (PlaybackRestart) Dispatch(h Handler) { h.OnPlaybackRestart() }
func (e PropertyChange) Dispatch(h Handler) { h.OnPropertyChange(e) }
func (e Other) Dispatch(h Handler) { h.OnOther(e.Name) }
