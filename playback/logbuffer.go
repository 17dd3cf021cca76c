package playback

import (
	"strings"

	"github.com/samber/mo"
)

// LogBuffer joins engine log fragments into complete, newline-terminated reports.
type LogBuffer struct {
	text mo.Option[string]
}

// Feed adds a message and returns the report to show, if one is complete. A report is
// flushed when the buffer was unterminated (or empty) and the new message ends a line.
// Text is appended while a report is pending, never dropped.
func (b *LogBuffer) Feed(message string) mo.Option[string] {
	buffer, present := b.text.Get()
	bufferComplete := present && strings.HasSuffix(buffer, "\n")
	messageComplete := strings.HasSuffix(message, "\n")

	if present {
		b.text = mo.Some(buffer + message)
	} else {
		b.text = mo.Some(message)
	}

	if !bufferComplete && messageComplete {
		return b.Flush()
	}
	return mo.None[string]()
}

// Flush returns the buffered text, if any, and clears the buffer.
func (b *LogBuffer) Flush() mo.Option[string] {
	text := b.text
	b.text = mo.None[string]()
	return text
}

// Pending returns the buffered text without clearing it.
func (b *LogBuffer) Pending() mo.Option[string] {
	return b.text
}
