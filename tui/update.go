package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/vireo-player/vireo/internal/ui"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/open"
	"github.com/vireo-player/vireo/playlist"
	"github.com/vireo-player/vireo/recent"
	"github.com/vireo-player/vireo/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.update(msg)
	listCmd := b.syncEntries()
	b.publish()

	return b, tea.Batch(cmd, listCmd, b.flush())
}

func (b *statefulBubble) update(msg tea.Msg) tea.Cmd {
	// The notifier sees every message, whichever branch handles it.
	return tea.Batch(b.notifier.Update(msg), b.route(msg))
}

func (b *statefulBubble) route(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return nil
	case startMsg:
		b.session.Start(b.options.Files)
		return nil
	case drainMsg:
		b.session.Drain()
		return nil
	case tickMsg:
		b.media.position = b.session.Synchronizer().Position().OrElse(0)
		return tick()
	case actionMsg:
		if !b.session.Stopped() {
			msg(b.session.Controls())
		}
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return tea.Quit
		}
	}

	switch b.state {
	case playlistState:
		return b.updatePlaylist(msg)
	case inputState:
		return b.updateInput(msg)
	case jumpState:
		return b.updateJump(msg)
	case errorState:
		return b.updateError(msg)
	}
	return nil
}

// quit asks the engine to exit; its Shutdown event ends the program. With the engine already
// gone there is nobody left to answer, so the program ends directly.
func (b *statefulBubble) quit() tea.Cmd {
	if b.session.Stopped() {
		return tea.Quit
	}

	b.session.Controls().Quit()
	return nil
}

func (b *statefulBubble) updatePlaylist(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.playlistC, cmd = b.playlistC.Update(msg)
		return cmd
	}

	controls := b.session.Controls()
	bridge := b.session.Bridge()

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return b.quit()
	case key.Matches(keyMsg, b.keymap.playPause):
		controls.TogglePause()
	case key.Matches(keyMsg, b.keymap.seekBack):
		controls.Seek(-b.seekStep())
	case key.Matches(keyMsg, b.keymap.seekForward):
		controls.Seek(b.seekStep())
	case key.Matches(keyMsg, b.keymap.prevChapter):
		controls.PrevChapter()
	case key.Matches(keyMsg, b.keymap.nextChapter):
		controls.NextChapter()
	case key.Matches(keyMsg, b.keymap.prev):
		controls.Prev()
	case key.Matches(keyMsg, b.keymap.next):
		controls.Next()
	case key.Matches(keyMsg, b.keymap.volumeUp):
		controls.SetVolume(b.media.volume + b.volumeStep())
	case key.Matches(keyMsg, b.keymap.volumeDown):
		controls.SetVolume(b.media.volume - b.volumeStep())
	case key.Matches(keyMsg, b.keymap.fullscreen):
		controls.ToggleFullscreen()
	case key.Matches(keyMsg, b.keymap.screenshot):
		controls.Screenshot()
	case key.Matches(keyMsg, b.keymap.play):
		if i, ok := b.selected(); ok {
			bridge.Select(i)
		}
	case key.Matches(keyMsg, b.keymap.remove):
		if i, ok := b.selected(); ok {
			if err := bridge.Remove(i); err != nil {
				return ui.Notify(err.Error())
			}
		}
	case key.Matches(keyMsg, b.keymap.moveUp):
		if i, ok := b.selected(); ok && i > 0 {
			if err := bridge.Move(i, i-1); err != nil {
				return ui.Notify(err.Error())
			}
			b.playlistC.Select(i - 1)
		}
	case key.Matches(keyMsg, b.keymap.moveDown):
		if i, ok := b.selected(); ok && i+1 < len(b.entries) {
			// the engine inserts before the target, so skipping one slot lands below the next entry
			if err := bridge.Move(i, i+2); err != nil {
				return ui.Notify(err.Error())
			}
			b.playlistC.Select(i + 1)
		}
	case key.Matches(keyMsg, b.keymap.add):
		return b.startInput(true)
	case key.Matches(keyMsg, b.keymap.open):
		return b.startInput(false)
	case key.Matches(keyMsg, b.keymap.jump):
		return b.startJump()
	case key.Matches(keyMsg, b.keymap.reveal):
		if i, ok := b.selected(); ok {
			if err := open.Reveal(b.entries[i].URI); err != nil {
				return ui.Notify(err.Error())
			}
		}
	default:
		var cmd tea.Cmd
		b.playlistC, cmd = b.playlistC.Update(msg)
		return cmd
	}

	return nil
}

func (b *statefulBubble) startInput(appendMode bool) tea.Cmd {
	b.appendInput = appendMode
	b.inputC.SetValue("")
	b.inputC.SetSuggestions(recent.SuggestMany(""))
	b.hints = nil
	b.newState(inputState)
	return b.inputC.Focus()
}

func (b *statefulBubble) updateInput(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return nil
		case key.Matches(keyMsg, b.keymap.confirm):
			value := strings.TrimSpace(b.inputC.Value())
			b.inputC.Blur()
			b.previousState()

			if value == "" {
				return nil
			}

			uri := util.ResolveMediaPath(value)
			b.session.Open([]string{uri}, b.appendInput)

			if err := recent.Remember(uri, 1); err != nil {
				log.Warnf("remember %s: %s", uri, err)
			}

			verb := "Opened"
			if b.appendInput {
				verb = "Appended"
			}
			return ui.Notify(fmt.Sprintf("%s %s", verb, playlist.NameFromPath(uri)))
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.hints = lo.Slice(recent.SuggestMany(b.inputC.Value()), 0, maxHints)
	return cmd
}

func (b *statefulBubble) startJump() tea.Cmd {
	b.jumpC.SetValue("")
	b.matches = nil
	b.newState(jumpState)
	return b.jumpC.Focus()
}

// rank orders the playlist entries by how well their names match query.
func (b *statefulBubble) rank(query string) fuzzy.Ranks {
	if query == "" {
		return nil
	}

	names := lo.Map(b.entries, func(e playlist.Entry, _ int) string {
		return e.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)
	return ranks
}

func (b *statefulBubble) updateJump(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keymap.back):
			b.jumpC.Blur()
			b.previousState()
			return nil
		case key.Matches(keyMsg, b.keymap.confirm):
			b.jumpC.Blur()
			b.previousState()

			if len(b.matches) > 0 {
				b.playlistC.Select(b.matches[0].OriginalIndex)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.jumpC, cmd = b.jumpC.Update(msg)
	b.matches = b.rank(b.jumpC.Value())
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return b.quit()
	case key.Matches(keyMsg, b.keymap.confirm), key.Matches(keyMsg, b.keymap.back):
		if len(b.errors) > 0 {
			b.errors = b.errors[1:]
		}
		if len(b.errors) == 0 {
			b.previousState()
		}
	}

	return nil
}
