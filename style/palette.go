package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha tones used by the player screens.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Text     = lipgloss.Color("#cdd6f4")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Lavender = lipgloss.Color("#b4befe")
)

var (
	// AccentColor marks the playing entry and the selected row.
	AccentColor = Mauve
	ErrorColor  = Red
	HiRed       = Red
)
