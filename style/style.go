// Package style holds the lipgloss renderers shared by the TUI and the CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vireo-player/vireo/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate returns a renderer fixing text to width columns.
func Truncate(width int) func(string) string {
	return func(s string) string { return New().Width(width).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// banner renders s as a padded label on bg.
func banner(bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(color.New("230")).Background(bg).Padding(0, 1).Render(s)
	}
}

var (
	Title      = banner(color.New("62"))
	ErrorTitle = banner(color.Red)
)
