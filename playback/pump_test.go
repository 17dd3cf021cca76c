package playback

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vireo-player/vireo/engine"
)

func TestPump(t *testing.T) {
	Convey("Given a session over a fake engine", t, func() {
		f := newFixture(Options{LogLevel: engine.LogError})
		ctx := f.session.Context()

		Convey("Wakeups schedule one drain until it runs", func() {
			f.engine.Push(engine.StartFile{}, engine.PlaybackRestart{})
			So(f.drains, ShouldEqual, 1)

			f.session.Drain()
			So(f.engine.Pending(), ShouldEqual, 0)

			f.engine.Push(engine.StartFile{})
			So(f.drains, ShouldEqual, 2)
		})

		Convey("End of file followed by idle leaves the session stopped and paused", func() {
			for _, prior := range []Context{
				{Loaded: true, Paused: false},
				{Loaded: false, Paused: false},
				{Loaded: true, Paused: true},
			} {
				ctx.Loaded, ctx.Paused = prior.Loaded, prior.Paused

				f.engine.Push(
					engine.PropertyChange{Name: "eof-reached", Value: true},
					engine.Idle{},
				)
				f.session.Drain()

				So(ctx.Loaded, ShouldBeFalse)
				So(ctx.Paused, ShouldBeTrue)
				So(ctx.EndOfFileReached, ShouldBeTrue)
			}
			So(f.fatal.errs, ShouldBeEmpty)
		})

		Convey("eof-reached turning false changes nothing", func() {
			ctx.Loaded = true
			f.engine.Push(engine.PropertyChange{Name: "eof-reached", Value: false})
			f.session.Drain()
			So(ctx.Loaded, ShouldBeTrue)
			So(f.view.resets, ShouldEqual, 0)
		})

		Convey("Idle after a loaded file pauses the engine and resets the view", func() {
			ctx.Loaded = true
			f.session.Mirror().Append("a", "/a")
			f.session.Mirror().SetCurrent(0)

			f.engine.Push(engine.Idle{})
			f.session.Drain()

			So(ctx.Paused, ShouldBeTrue)
			So(ctx.Loaded, ShouldBeFalse)
			So(f.engine.Properties["pause"], ShouldEqual, true)
			So(f.view.resets, ShouldEqual, 1)
			So(f.session.Mirror().Current().IsAbsent(), ShouldBeTrue)
		})

		Convey("Idle while nothing is loaded is ignored", func() {
			f.engine.Push(engine.Idle{})
			f.session.Drain()
			So(f.engine.CallsTo("SetProperty"), ShouldBeEmpty)
			So(f.view.resets, ShouldEqual, 0)
		})

		Convey("FileLoaded refreshes exactly once with the file marked loaded", func() {
			f.engine.Properties["playlist"] = []engine.PlaylistItem{{Filename: "/music/a.flac", Current: true}}
			f.engine.Properties["media-title"] = "a"
			f.engine.Properties["playlist-pos"] = int64(0)

			var loadedDuringRefresh []bool
			f.view.onPlaying = func() { loadedDuringRefresh = append(loadedDuringRefresh, ctx.Loaded) }

			f.engine.Push(engine.FileLoaded{})
			f.session.Drain()

			So(loadedDuringRefresh, ShouldResemble, []bool{true})
			So(f.view.titles, ShouldResemble, []string{"a"})
			So(f.session.Mirror().Entries()[0].Name, ShouldEqual, "a.flac")
			So(f.session.Mirror().Current().OrElse(-1), ShouldEqual, 0)
		})

		Convey("Unpausing with nothing loaded restarts the playlist", func() {
			ctx.Paused = true
			mirror := f.session.Mirror()
			mirror.Append("a", "/a")
			mirror.Append("b", "/b")

			f.engine.Push(engine.PropertyChange{Name: "pause", Value: false})
			f.session.Drain()

			So(ctx.Paused, ShouldBeFalse)
			So(f.loadfiles(), ShouldResemble, [][]string{
				{"loadfile", "/a", "replace"},
				{"loadfile", "/b", "append"},
			})
			So(mirror.URIs(), ShouldResemble, []string{"/a", "/b"})
			So(f.view.playing, ShouldResemble, []bool{true})
		})

		Convey("Pausing while loaded only refreshes", func() {
			ctx.Loaded = true
			f.engine.Push(engine.PropertyChange{Name: "pause", Value: true})
			f.session.Drain()

			So(ctx.Paused, ShouldBeTrue)
			So(f.loadfiles(), ShouldBeEmpty)
			So(f.view.playing, ShouldResemble, []bool{false})
		})

		Convey("The first video reconfiguration of a new file resizes once", func() {
			ctx.NewFile = true
			f.engine.Properties["dwidth"] = int64(1920)
			f.engine.Properties["dheight"] = int64(1080)

			f.engine.Push(engine.VideoReconfig{}, engine.VideoReconfig{})
			f.session.Drain()

			So(f.view.resized, ShouldResemble, [][2]int64{{1920, 1080}})
			So(ctx.NewFile, ShouldBeFalse)
		})

		Convey("Without video dimensions there is no resize", func() {
			ctx.NewFile = true
			f.engine.Push(engine.VideoReconfig{})
			f.session.Drain()

			So(f.view.resized, ShouldBeEmpty)
			So(ctx.NewFile, ShouldBeTrue)
		})

		Convey("EndFile clears NewFile only while loaded", func() {
			ctx.NewFile = true
			f.engine.Push(engine.EndFile{Reason: "stop"})
			f.session.Drain()
			So(ctx.NewFile, ShouldBeTrue)

			ctx.Loaded = true
			f.engine.Push(engine.EndFile{Reason: "eof"})
			f.session.Drain()
			So(ctx.NewFile, ShouldBeFalse)
		})

		Convey("PlaybackRestart refreshes derived state", func() {
			f.engine.Properties["volume"] = 55.0
			f.engine.Push(engine.PlaybackRestart{})
			f.session.Drain()
			So(f.view.volume, ShouldAlmostEqual, 0.55)
		})

		Convey("Log messages are joined and shown as one report", func() {
			f.engine.Push(
				engine.LogMessage{Prefix: "cplayer", Level: engine.LogError, Text: "partial"},
				engine.LogMessage{Prefix: "cplayer", Level: engine.LogError, Text: "rest\n"},
				engine.LogMessage{Prefix: "cplayer", Level: engine.LogError, Text: "line2\n"},
			)
			f.session.Drain()
			So(f.view.errors, ShouldResemble, []string{"partialrest\n", "line2\n"})
		})

		Convey("Log messages the filters reject never reach the view", func() {
			f.engine.Push(engine.LogMessage{Prefix: "vo", Level: engine.LogInfo, Text: "chatty\n"})
			f.session.Drain()
			So(f.view.errors, ShouldBeEmpty)
		})

		Convey("Shutdown stops the pump for good", func() {
			shutdowns := 0
			f.session.pump.onShutdown = func() { shutdowns++ }

			f.engine.Push(engine.Shutdown{}, engine.FileLoaded{})
			f.session.Drain()

			So(f.view.quits, ShouldEqual, 1)
			So(shutdowns, ShouldEqual, 1)
			So(f.session.Stopped(), ShouldBeTrue)
			So(f.engine.Pending(), ShouldEqual, 1)

			f.session.Drain()
			So(f.engine.Pending(), ShouldEqual, 1)
			So(ctx.Loaded, ShouldBeFalse)
		})

		Convey("A failing engine write during idle goes to the fatal handler", func() {
			ctx.Loaded = true
			f.engine.Fail["SetProperty:pause"] = errors.New("boom")

			f.engine.Push(engine.Idle{})
			f.session.Drain()
			So(f.fatal.errs, ShouldHaveLength, 1)
		})
	})
}
