package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/history"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/mpris"
	"github.com/vireo-player/vireo/playback"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Files are opened once the interface is up; the first replaces, the rest append.
	Files  []string
	Paused bool

	// ResumeAt seeks the first loaded file, used when continuing a saved session.
	ResumeAt mo.Option[float64]

	Setup engine.SetupConfig

	Mpris       bool
	SaveHistory bool
}

// Run drives client from a Bubble Tea program until the engine shuts down or the user
// force quits. An engine error with no recovery path is returned as is.
func Run(client engine.Client, options *Options) error {
	bubble := newBubble(options)
	program := tea.NewProgram(bubble, tea.WithAltScreen())

	// never block the engine's reader goroutine on the program loop
	send := func(msg tea.Msg) {
		go program.Send(msg)
	}

	session := playback.NewSession(client, bubble, playback.Options{
		Paused:     options.Paused,
		Schedule:   func() { send(drainMsg{}) },
		Fatal:      bubble.fatal,
		LogLevel:   options.Setup.LogLevel,
		LogFilters: options.Setup.LogFilters,
	})
	bubble.session = session

	defer func() {
		if err := session.Close(); err != nil {
			log.Warnf("close engine: %s", err)
		}
	}()

	if err := session.Setup(options.Setup); err != nil {
		return &playback.FatalError{Err: err}
	}

	if options.Mpris {
		adapter, err := mpris.New(func(a mpris.Action) { send(actionMsg(a)) })
		if err != nil {
			log.Warnf("mpris unavailable: %s", err)
		} else {
			bubble.publisher = adapter
			defer func() {
				if err := adapter.Close(); err != nil {
					log.Warnf("close mpris: %s", err)
				}
			}()
		}
	}

	_, err := program.Run()

	if options.SaveHistory && !session.Mirror().IsEmpty() {
		if err := history.Save(session.Mirror().Entries(), bubble.media.position); err != nil {
			log.Warnf("save history: %s", err)
		}
	}

	if bubble.fatalErr != nil {
		return &playback.FatalError{Err: bubble.fatalErr}
	}

	return err
}
