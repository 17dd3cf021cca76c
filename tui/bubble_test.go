package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/engine/enginetest"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/internal/ui"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/mpris"
	"github.com/vireo-player/vireo/playback"
	"github.com/vireo-player/vireo/recent"
)

func init() {
	filesystem.SetMemMapFs()
}

type statusRecorder struct {
	statuses []mpris.Status
}

func (r *statusRecorder) Publish(s mpris.Status) {
	r.statuses = append(r.statuses, s)
}

func (r *statusRecorder) last() mpris.Status {
	return r.statuses[len(r.statuses)-1]
}

func newTestBubble(options *Options) (*statefulBubble, *enginetest.Fake) {
	viper.Set(key.PlayerSeekStep, 10)
	viper.Set(key.PlayerVolumeStep, 5)
	viper.Set(key.TUIRecentSuggestions, true)

	fake := enginetest.New()
	b := newBubble(options)
	b.session = playback.NewSession(fake, b, playback.Options{
		Paused:   options.Paused,
		Fatal:    b.fatal,
		Schedule: func() {},
	})
	return b, fake
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(b *statefulBubble, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = b.Update(keyPress(k))
	}
	return cmd
}

func loadfiles(f *enginetest.Fake) [][]string {
	var out [][]string
	for _, cmd := range f.Commands() {
		if cmd[0] == "loadfile" {
			out = append(out, cmd)
		}
	}
	return out
}

func TestBubble(t *testing.T) {
	Convey("Given a bubble started with two files", t, func() {
		b, fake := newTestBubble(&Options{Files: []string{"/music/a.flac", "/music/b.flac"}})
		b.Update(startMsg{})

		Convey("Then both files are loaded and listed", func() {
			So(loadfiles(fake), ShouldResemble, [][]string{
				{"loadfile", "/music/a.flac", "replace"},
				{"loadfile", "/music/b.flac", "append"},
			})
			So(b.playlistC.Items(), ShouldHaveLength, 2)
			So(b.media.active, ShouldBeTrue)
		})

		Convey("When space is pressed", func() {
			press(b, " ")

			Convey("Then the pause intent is pushed", func() {
				So(b.session.Context().Paused, ShouldBeTrue)
				So(fake.Properties["pause"], ShouldEqual, true)
			})
		})

		Convey("When seek keys are pressed", func() {
			fake.Reset()
			press(b, "l", "h")

			Convey("Then relative seeks of one step are issued", func() {
				So(fake.Commands(), ShouldResemble, [][]string{
					{"seek", "10", "relative"},
					{"seek", "-10", "relative"},
				})
			})
		})

		Convey("When the volume is raised", func() {
			b.SetVolume(0.5)
			press(b, "+")

			Convey("Then the volume moves one step", func() {
				So(fake.Properties["volume"], ShouldAlmostEqual, 55.0, 0.001)
			})
		})

		Convey("When the second entry is moved up", func() {
			b.playlistC.Select(1)
			fake.Reset()
			press(b, "K")

			Convey("Then the engine playlist and the list follow", func() {
				So(fake.Commands(), ShouldResemble, [][]string{{"playlist-move", "1", "0"}})
				So(b.playlistC.Index(), ShouldEqual, 0)
				So(b.session.Mirror().URIs(), ShouldResemble, []string{"/music/b.flac", "/music/a.flac"})
			})
		})

		Convey("When the first entry is moved down", func() {
			fake.Reset()
			press(b, "J")

			Convey("Then the move skips past the next entry", func() {
				So(fake.Commands(), ShouldResemble, [][]string{{"playlist-move", "0", "2"}})
				So(b.playlistC.Index(), ShouldEqual, 1)
			})
		})

		Convey("When the selected entry is removed", func() {
			fake.Reset()
			press(b, "d")

			Convey("Then it leaves both playlists", func() {
				So(fake.Commands(), ShouldResemble, [][]string{{"playlist-remove", "0"}})
				So(b.playlistC.Items(), ShouldHaveLength, 1)
			})
		})

		Convey("When jumping by name", func() {
			press(b, "/", "b.fl", "enter")

			Convey("Then the best match is highlighted", func() {
				So(b.state, ShouldEqual, playlistState)
				So(b.playlistC.Index(), ShouldEqual, 1)
			})
		})

		Convey("When a file is appended through the prompt", func() {
			cmd := press(b, "a", "/music/c.flac", "enter")

			Convey("Then it is loaded in append mode and a notification follows", func() {
				So(loadfiles(fake), ShouldContain, []string{"loadfile", "/music/c.flac", "append"})
				So(b.state, ShouldEqual, playlistState)
				So(cmd, ShouldNotBeNil)
			})

			Convey("Then the URI is suggested next time", func() {
				So(recent.SuggestMany("c.flac"), ShouldContain, "/music/c.flac")

				press(b, "o", "c.fl")
				So(b.hints, ShouldContain, "/music/c.flac")
			})
		})

		Convey("When the prompt is cancelled", func() {
			press(b, "o", "/music/c.flac", "esc")

			Convey("Then nothing is loaded", func() {
				So(loadfiles(fake), ShouldHaveLength, 2)
				So(b.state, ShouldEqual, playlistState)
			})
		})

		Convey("When q is pressed", func() {
			fake.Reset()
			press(b, "q")

			Convey("Then the engine is asked to quit", func() {
				So(fake.Commands(), ShouldResemble, [][]string{{"quit"}})
			})
		})

		Convey("When the engine shuts down", func() {
			fake.Push(engine.Shutdown{})
			_, cmd := b.Update(drainMsg{})

			Convey("Then the program is told to quit", func() {
				So(b.session.Stopped(), ShouldBeTrue)
				So(cmd, ShouldNotBeNil)
			})

			Convey("Then q quits without talking to the engine", func() {
				fake.Reset()
				So(press(b, "q"), ShouldNotBeNil)
				So(fake.Commands(), ShouldBeEmpty)
			})
		})
	})
}

func TestDisplay(t *testing.T) {
	Convey("Given a bubble", t, func() {
		b, fake := newTestBubble(&Options{})

		Convey("When errors are shown", func() {
			b.ShowError("first")
			b.ShowError("second")

			Convey("Then they are dismissed one at a time", func() {
				So(b.state, ShouldEqual, errorState)
				press(b, "enter")
				So(b.state, ShouldEqual, errorState)
				So(b.errors, ShouldResemble, []string{"second"})
				press(b, "enter")
				So(b.state, ShouldEqual, playlistState)
			})
		})

		Convey("When the session asks to quit", func() {
			b.Quit()
			cmd := b.flush()

			Convey("Then a quit command is handed to the program once", func() {
				So(cmd, ShouldNotBeNil)
				So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
				So(b.flush(), ShouldBeNil)
			})
		})

		Convey("When a notification arrives", func() {
			cmd := b.update(ui.NotificationMsg("Opened a.mkv"))

			Convey("Then it is shown and its expiry is scheduled", func() {
				So(b.notifier.Current(), ShouldEqual, "Opened a.mkv")
				So(cmd, ShouldNotBeNil)
			})

			Convey("Then messages handled before the state switch keep their own commands", func() {
				So(b.update(tickMsg{}), ShouldNotBeNil)
				So(b.update(tea.WindowSizeMsg{Width: 80, Height: 24}), ShouldBeNil)
				So(b.notifier.Current(), ShouldEqual, "Opened a.mkv")
			})
		})

		Convey("When an engine error is fatal", func() {
			first := errors.New("engine vanished")
			b.fatal(first)
			b.fatal(errors.New("later"))

			Convey("Then the first error is kept", func() {
				So(b.fatalErr, ShouldEqual, first)
				So(b.pending, ShouldNotBeEmpty)
			})
		})

		Convey("When the video size is known", func() {
			b.ResizeToFit(1920, 1080, 1)

			Convey("Then the engine window is scaled", func() {
				So(fake.Properties["window-scale"], ShouldEqual, 1.0)
				So(b.media.video, ShouldResemble, [2]int64{1920, 1080})
			})
		})

		Convey("When embedded in a host window", func() {
			b.options.Setup.WID = 42
			b.ResizeToFit(1920, 1080, 1)

			Convey("Then the window is left alone", func() {
				So(fake.Properties, ShouldNotContainKey, "window-scale")
			})
		})

		Convey("When reset", func() {
			b.SetTitle("a")
			b.SetVolume(0.3)
			b.SetPlaying(true)
			b.Reset()

			Convey("Then media details clear but the volume stays", func() {
				So(b.media.title, ShouldBeEmpty)
				So(b.media.playing, ShouldBeFalse)
				So(b.media.volume, ShouldEqual, 0.3)
			})
		})
	})

	Convey("Given a bubble resuming a saved position", t, func() {
		b, fake := newTestBubble(&Options{ResumeAt: mo.Some(30.0)})

		Convey("When the first length arrives", func() {
			b.SetSeekBarLength(100)
			b.SetSeekBarLength(100)

			Convey("Then the position is restored exactly once", func() {
				So(fake.Commands(), ShouldResemble, [][]string{{"seek", "30", "absolute"}})
			})
		})
	})
}

func TestPublish(t *testing.T) {
	Convey("Given a bubble with a status publisher", t, func() {
		b, fake := newTestBubble(&Options{Files: []string{"/music/a.flac"}})
		recorder := &statusRecorder{}
		b.publisher = recorder

		fake.Properties["playlist-pos"] = int64(0)
		b.Update(startMsg{})
		b.session.Bridge().SetIndicator(0)
		b.SetTitle("Song")
		b.SetPlaying(true)
		b.Update(tickMsg{})

		Convey("Then the status reflects the display", func() {
			s := recorder.last()
			So(s.Title, ShouldEqual, "Song")
			So(s.Playing, ShouldBeTrue)
			So(s.Count, ShouldEqual, 1)
			So(s.URI, ShouldEqual, "/music/a.flac")
		})

		Convey("When a desktop action arrives", func() {
			b.Update(actionMsg(func(c *playback.Controls) { c.Next() }))

			Convey("Then it runs against the session controls", func() {
				So(fake.Commands(), ShouldContain, []string{"playlist-next"})
			})
		})
	})
}
