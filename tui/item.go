package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/icon"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/playlist"
	"github.com/vireo-player/vireo/style"
)

// listItem is one playlist row.
type listItem struct {
	entry playlist.Entry
}

func (t *listItem) Title() string {
	if !t.entry.Current {
		return t.entry.Name
	}

	mark := lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Current))
	return fmt.Sprintf("%s %s", mark, t.entry.Name)
}

// Description shows the URI when configured and when it adds something to the name.
func (t *listItem) Description() string {
	if !viper.GetBool(key.TUIShowURIs) || t.entry.URI == t.entry.Name {
		return ""
	}

	return t.entry.URI
}

func (t *listItem) FilterValue() string {
	return t.entry.Name
}
