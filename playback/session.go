package playback

import (
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/playlist"
	"github.com/vireo-player/vireo/util"
)

// Options configure a Session.
type Options struct {
	// Paused is the initial pause intent.
	Paused bool

	// Schedule arranges for Session.Drain to run on the UI goroutine. It is called from
	// engine goroutines and must not block.
	Schedule func()

	// Fatal handles engine errors with no recovery path. Defaults to ExitOnFatal.
	Fatal FatalHandler

	// OnShutdown runs once after the engine's Shutdown event has been handled.
	OnShutdown func()

	LogLevel   engine.LogLevel
	LogFilters engine.LogLevelFilters
}

// Session wires the playback components around one engine handle.
type Session struct {
	ctx      *Context
	engine   engine.Client
	view     View
	notifier *Notifier

	bridge   *Bridge
	sync     *Synchronizer
	pump     *Pump
	controls *Controls

	initial []string
}

// NewSession builds every component around a shared Context. The engine must already
// be created; call Setup before anything else.
func NewSession(client engine.Client, view View, opts Options) *Session {
	fatal := opts.Fatal
	if fatal == nil {
		fatal = ExitOnFatal
	}

	ctx := NewContext(opts.Paused)
	bridge := NewBridge(ctx, client, view, playlist.NewMirror(), fatal)
	sync := NewSynchronizer(ctx, client, view, bridge, fatal)

	return &Session{
		ctx:      ctx,
		engine:   client,
		view:     view,
		notifier: NewNotifier(opts.Schedule),
		bridge:   bridge,
		sync:     sync,
		pump: &Pump{
			checker:    checker{fatal: fatal},
			ctx:        ctx,
			engine:     client,
			view:       view,
			bridge:     bridge,
			sync:       sync,
			logLevel:   opts.LogLevel,
			logFilters: opts.LogFilters,
			onShutdown: opts.OnShutdown,
		},
		controls: NewControls(ctx, client, sync),
	}
}

// Setup configures and initializes the engine, then starts listening for its wakeups.
// Rejected options and an unreadable config file are shown to the user; anything else
// is returned.
func (s *Session) Setup(cfg engine.SetupConfig) error {
	cfg.Paused = s.ctx.Paused

	result, err := engine.Setup(s.engine, cfg)
	if err != nil {
		return err
	}

	if result.ConfigErr != nil {
		s.view.ShowError("Failed to load the engine config file " + cfg.ConfigFile + ": " + result.ConfigErr.Error())
	}

	if result.FailedOptions > 0 {
		s.view.ShowError("Failed to apply " + util.Quantify(result.FailedOptions, "engine option.", "engine options."))
	}

	s.engine.SetWakeupCallback(s.notifier.Notify)
	return nil
}

// Start queues the files to open once the engine's first notifications have been drained,
// then drains.
func (s *Session) Start(uris []string) {
	if len(uris) > 0 {
		s.initial = uris
		s.ctx.InitialLoadPending = true
	}

	s.Drain()
}

// Drain handles every queued engine event. Call it on the UI goroutine whenever
// Schedule fires.
func (s *Session) Drain() {
	s.notifier.Clear()
	s.pump.Drain()

	if s.ctx.InitialLoadPending && !s.pump.Stopped() {
		s.ctx.InitialLoadPending = false
		log.Infof("opening %s", util.Quantify(len(s.initial), "file", "files"))
		s.Open(s.initial, false)
		s.initial = nil
	}
}

// Open loads uris as a new playlist, or appends them to the current one.
func (s *Session) Open(uris []string, appendMode bool) {
	for i, uri := range uris {
		s.bridge.Load(mo.Some(uri), appendMode || i > 0, true)
	}
}

// Close terminates the engine.
func (s *Session) Close() error {
	return s.engine.Terminate()
}

// Accessors for the components wired by NewSession.

func (s *Session) Context() *Context { return s.ctx }
func (s *Session) Bridge() *Bridge { return s.bridge }
func (s *Session) Synchronizer() *Synchronizer { return s.sync }
func (s *Session) Controls() *Controls { return s.controls }
func (s *Session) Mirror() *playlist.Mirror { return s.bridge.Mirror() }

// Stopped reports whether the engine has shut down.
func (s *Session) Stopped() bool { return s.pump.Stopped() }
