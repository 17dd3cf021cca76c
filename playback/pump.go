package playback

import (
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/log"
)

// Pump drains the engine's event queue and applies each event to the session state.
type Pump struct {
	checker

	ctx    *Context
	engine engine.Client
	view   View
	bridge *Bridge
	sync   *Synchronizer

	logLevel   engine.LogLevel
	logFilters engine.LogLevelFilters
	onShutdown func()

	stopped bool
}

var _ engine.Handler = (*Pump)(nil)

// Drain handles queued events until the queue is empty or the engine shuts down.
// It never waits for new events.
func (p *Pump) Drain() {
	for !p.stopped {
		ev := p.engine.WaitEvent(0)
		if ev.Kind() == engine.EventNone {
			return
		}

		ev.Dispatch(p)
	}
}

// Stopped reports whether a shutdown has been handled.
func (p *Pump) Stopped() bool {
	return p.stopped
}

// OnNone is never dispatched; Drain stops on an empty queue.
func (p *Pump) OnNone() {}

// OnShutdown stops the pump for good and tells the view to quit.
func (p *Pump) OnShutdown() {
	log.Info("engine shut down")

	p.stopped = true
	p.ctx.Loaded = false
	p.view.Quit()

	if p.onShutdown != nil {
		p.onShutdown()
	}
}

// OnLogMessage mirrors an engine log line to the log file and, once a full line has
// been buffered, shows it to the user.
func (p *Pump) OnLogMessage(ev engine.LogMessage) {
	if !p.logFilters.Allows(ev.Prefix, ev.Level, p.logLevel) {
		return
	}

	log.Engine(ev.Prefix, ev.Level.Logrus(), ev.Text)

	if report, ok := p.ctx.Log.Feed(ev.Text).Get(); ok {
		p.view.ShowError(report)
	}
}

func (p *Pump) OnStartFile() {}

// OnEndFile ends the one-shot resize window of the file that just finished.
func (p *Pump) OnEndFile(ev engine.EndFile) {
	log.Debugf("end of file: %s", ev.Reason)

	if p.ctx.Loaded {
		p.ctx.NewFile = false
	}
}

// OnFileLoaded marks the file loaded, re-reads the engine playlist and refreshes the view.
func (p *Pump) OnFileLoaded() {
	p.ctx.Loaded = true
	p.ctx.EndOfFileReached = false

	p.bridge.Resync()
	p.sync.RefreshDerivedState()
}

// OnIdle unloads a file the engine dropped: it pauses and resets the view.
func (p *Pump) OnIdle() {
	if !p.ctx.Loaded {
		return
	}

	p.ctx.Paused = true
	p.ctx.Loaded = false

	if !p.ok(p.engine.SetProperty("pause", p.ctx.Paused)) {
		return
	}

	p.view.Reset()
	p.bridge.ResetIndicator()
}

// OnVideoReconfig resizes the view to a new file's video once.
func (p *Pump) OnVideoReconfig() {
	if !p.ctx.NewFile {
		return
	}

	width, err := engine.GetInt64(p.engine, "dwidth")
	if err != nil {
		return
	}
	height, err := engine.GetInt64(p.engine, "dheight")
	if err != nil {
		return
	}

	if width > 0 && height > 0 {
		p.view.ResizeToFit(width, height, 1)
		p.ctx.NewFile = false
	}
}

func (p *Pump) OnPlaybackRestart() {
	p.sync.RefreshDerivedState()
}

// OnPropertyChange tracks the observed pause and eof-reached flags.
func (p *Pump) OnPropertyChange(ev engine.PropertyChange) {
	switch ev.Name {
	case "pause":
		p.ctx.Paused = engine.AsFlag(ev.Value)

		// The engine became ready with nothing open: start the queued playlist.
		if !p.ctx.Loaded && !p.ctx.Paused {
			p.bridge.Load(mo.None[string](), false, true)
		}

		p.sync.RefreshDerivedState()
	case "eof-reached":
		if !engine.AsFlag(ev.Value) {
			return
		}

		p.ctx.Paused = true
		p.ctx.Loaded = false
		p.ctx.EndOfFileReached = true

		p.view.Reset()
		p.bridge.ResetIndicator()
	}
}

// OnOther drops events nothing handles.
func (p *Pump) OnOther(kind engine.EventKind) {
	log.Tracef("ignoring engine event %s", kind)
}
