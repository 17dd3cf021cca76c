package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vireo-player/vireo/mpris"
)

// startMsg opens the files given on startup.
type startMsg struct{}

// drainMsg is sent whenever the engine has events waiting.
type drainMsg struct{}

// tickMsg refreshes the playback position.
type tickMsg time.Time

// actionMsg carries a desktop media request onto the UI goroutine.
type actionMsg mpris.Action

const tickInterval = time.Second

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		tick(),
		textinput.Blink,
	)
}
