package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vireo-player/vireo/color"
	"github.com/vireo-player/vireo/icon"
	"github.com/vireo-player/vireo/style"
	"github.com/vireo-player/vireo/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	headerStyle           = lipgloss.NewStyle().Padding(1, 2, 0, 2)
)

const (
	// header lines plus its top padding
	headerHeight = 4

	// room for the elapsed and total labels around the bar
	progressLabelsWidth = 20

	maxJumpMatches   = 5
	maxHints         = 3
	maxStatesHistory = 8
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case playlistState:
		output = b.viewPlaylist()
	case inputState:
		output = b.viewInput()
	case jumpState:
		output = b.viewJump()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewHeader() string {
	if !b.media.active {
		return headerStyle.Render(strings.Join([]string{
			style.Title("Vireo"),
			"",
			style.Faint(icon.Get(icon.Stop) + " Nothing loaded. Press a to add a file or URL."),
		}, "\n"))
	}

	status := icon.Get(icon.Pause)
	switch {
	case b.media.length <= 0:
		status = icon.Get(icon.Progress)
	case b.media.playing:
		status = icon.Get(icon.Play)
	}

	title := b.media.title
	if title == "" {
		title = style.Faint("untitled")
	}

	var fraction float64
	if b.media.length > 0 {
		fraction = util.Clamp(b.media.position/b.media.length, 0, 1)
	}

	bar := fmt.Sprintf(
		"%s %s %s",
		util.FormatDuration(b.media.position),
		b.progressC.ViewAs(fraction),
		util.FormatDuration(b.media.length),
	)

	details := []string{
		fmt.Sprintf("%s %.0f%%", icon.Get(icon.Volume), b.media.volume*100),
	}
	if b.media.chapters {
		details = append(details, icon.Get(icon.Chapter)+" chapters")
	}
	if b.media.video[0] > 0 {
		details = append(details, fmt.Sprintf("%dx%d", b.media.video[0], b.media.video[1]))
	}

	return headerStyle.Render(strings.Join([]string{
		style.Truncate(b.width)(fmt.Sprintf("%s %s", status, style.Fg(color.Purple)(title))),
		bar,
		style.Faint(strings.Join(details, "  ")),
	}, "\n"))
}

func (b *statefulBubble) viewPlaylist() string {
	return b.viewHeader() + "\n" + listExtraPaddingStyle.Render(b.playlistC.View())
}

func (b *statefulBubble) viewInput() string {
	title := "Open"
	if b.appendInput {
		title = "Append to Playlist"
	}

	lines := []string{
		style.Title(title),
		"",
		b.inputC.View(),
	}

	if len(b.hints) > 0 {
		lines = append(lines, "", style.Faint("Recent"))
		for _, hint := range b.hints {
			lines = append(lines, style.Truncate(b.width)(style.Faint("  "+hint)))
		}
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewJump() string {
	lines := []string{
		style.Title("Jump to Entry"),
		"",
		b.jumpC.View(),
		"",
	}

	for i, match := range b.matches {
		if i == maxJumpMatches {
			break
		}

		line := match.Target
		if i == 0 {
			line = style.Fg(style.AccentColor)(icon.Get(icon.Current) + " " + line)
		} else {
			line = "  " + line
		}

		lines = append(lines, style.Truncate(b.width)(line))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	var message string
	if len(b.errors) > 0 {
		message = b.errors[0]
	}

	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	body := wrap.String(errorStyle.Render(message), b.width)

	lines := []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " " + body,
	}

	if rest := len(b.errors) - 1; rest > 0 {
		lines = append(lines, "", style.Faint(util.Quantify(rest, "more error", "more errors")))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
