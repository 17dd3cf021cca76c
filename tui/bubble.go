// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/internal/ui"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/mpris"
	"github.com/vireo-player/vireo/playback"
	"github.com/vireo-player/vireo/playlist"
	"github.com/vireo-player/vireo/style"
	"github.com/vireo-player/vireo/util"
)

// statusPublisher receives the player status after every update.
type statusPublisher interface {
	Publish(mpris.Status)
}

// media is what the session last pushed for display.
type media struct {
	title    string
	chapters bool
	volume   float64
	length   float64
	position float64
	playing  bool
	active   bool
	video    [2]int64
}

// statefulBubble is the root model. It also serves as the session's playback.View, so every
// session call made from Update lands its display changes here before View runs.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	playlistC list.Model
	inputC    textinput.Model
	jumpC     textinput.Model
	progressC progress.Model
	helpC     help.Model

	session   *playback.Session
	publisher statusPublisher

	media       media
	entries     []playlist.Entry
	matches     fuzzy.Ranks
	appendInput bool
	hints       []string
	errors      []string
	resume      mo.Option[float64]

	// commands produced by view callbacks, returned from the current Update
	pending  []tea.Cmd
	fatalErr error

	width, height int
	notifier      *ui.Model

	options *Options
}

// setState switches both the workflow and its keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where we came from. Errors are never returned to.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if previous, ok := b.statesHistory.Pop(); ok {
		b.setState(previous)
		return
	}

	b.setState(playlistState)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy - headerHeight

	b.playlistC.SetSize(listWidth, max(listHeight, 1))
	b.playlistC.Help.Width = listWidth

	b.progressC.Width = max(styledWidth-progressLabelsWidth, 10)
	b.inputC.Width = styledWidth
	b.jumpC.Width = styledWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

// syncEntries rebuilds the list rows when the mirrored playlist changed.
func (b *statefulBubble) syncEntries() tea.Cmd {
	entries := b.session.Mirror().Entries()
	if slices.Equal(entries, b.entries) {
		return nil
	}

	b.entries = entries
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = &listItem{entry: e}
	}

	return b.playlistC.SetItems(items)
}

// selected returns the index of the highlighted row.
func (b *statefulBubble) selected() (int, bool) {
	i := b.playlistC.Index()
	return i, i >= 0 && i < len(b.entries)
}

func (b *statefulBubble) seekStep() float64 {
	return viper.GetFloat64(key.PlayerSeekStep)
}

func (b *statefulBubble) volumeStep() float64 {
	return viper.GetFloat64(key.PlayerVolumeStep) / 100
}

// flush hands over the commands queued by view callbacks.
func (b *statefulBubble) flush() tea.Cmd {
	if len(b.pending) == 0 {
		return nil
	}

	cmd := tea.Batch(b.pending...)
	b.pending = nil
	return cmd
}

// fatal is the session's handler for engine errors with no recovery path.
func (b *statefulBubble) fatal(err error) {
	if b.fatalErr == nil {
		b.fatalErr = err
	}
	b.pending = append(b.pending, tea.Quit)
}

func (b *statefulBubble) publish() {
	if b.publisher == nil {
		return
	}

	status := mpris.Status{
		Playing:  b.media.playing,
		Loaded:   b.session.Context().Loaded,
		Title:    b.media.title,
		Position: b.media.position,
		Length:   b.media.length,
		Volume:   b.media.volume,
		Count:    len(b.entries),
	}

	if i, ok := b.session.Mirror().Current().Get(); ok && i < len(b.entries) {
		status.Index = i
		status.URI = b.entries[i].URI
	}

	b.publisher.Publish(status)
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{Limit: maxStatesHistory},
		keymap:        keymap,
		notifier:      &ui.Model{},
		resume:        options.ResumeAt,
		options:       options,
		media:         media{volume: 1},
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = viper.GetBool(key.TUIShowURIs)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.playlistC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.playlistC.KeyMap = keymap.forList()
	bubble.playlistC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.playlistC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.playlistC.Title = "Playlist"
	bubble.playlistC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1)
	bubble.playlistC.Styles.NoItems = paddingStyle
	bubble.playlistC.SetStatusBarItemName("entry", "entries")
	bubble.playlistC.SetFilteringEnabled(false)
	bubble.playlistC.SetShowPagination(false)
	bubble.playlistC.SetShowStatusBar(false)

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "path or URL"
	bubble.inputC.Prompt = "> "
	bubble.inputC.ShowSuggestions = true
	bubble.inputC.KeyMap.AcceptSuggestion = keymap.acceptSuggestion

	bubble.jumpC = textinput.New()
	bubble.jumpC.Placeholder = "entry name"
	bubble.jumpC.Prompt = "/ "

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(playlistState)

	return &bubble
}
