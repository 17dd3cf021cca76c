package playback

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSynchronizer(t *testing.T) {
	Convey("Given a synchronizer", t, func() {
		f := newFixture(Options{})
		ctx := f.session.Context()
		sync := f.session.Synchronizer()

		f.session.Mirror().Append("a", "/a")
		f.session.Mirror().Append("b", "/b")

		Convey("The pause intent is pushed before anything is read", func() {
			ctx.Paused = true
			sync.RefreshDerivedState()

			methods := f.engine.Methods()
			So(methods[0], ShouldEqual, "SetProperty")
			So(f.engine.Properties["pause"], ShouldEqual, true)
			So(f.view.playing, ShouldResemble, []bool{false})
		})

		Convey("Every readable property reaches the view", func() {
			f.engine.Properties["media-title"] = "Song"
			f.engine.Properties["playlist-pos"] = 1.0
			f.engine.Properties["chapters"] = 3.0
			f.engine.Properties["volume"] = 80.0
			f.engine.Properties["length"] = 245.5

			sync.RefreshDerivedState()

			So(f.view.titles, ShouldResemble, []string{"Song"})
			So(f.session.Mirror().Current().OrElse(-1), ShouldEqual, 1)
			So(f.view.chapters, ShouldBeTrue)
			So(f.view.volume, ShouldAlmostEqual, 0.8)
			So(f.view.length, ShouldEqual, 245.5)
			So(f.view.playing, ShouldResemble, []bool{true})
		})

		Convey("Failed reads are skipped without touching their fields", func() {
			f.engine.Properties["volume"] = 40.0

			sync.RefreshDerivedState()

			So(f.view.titles, ShouldBeEmpty)
			So(f.view.volume, ShouldAlmostEqual, 0.4)
			So(f.view.calls, ShouldNotContain, "chapters false")
			So(f.fatal.errs, ShouldBeEmpty)
		})

		Convey("A single chapter disables chapter controls", func() {
			f.view.chapters = true
			f.engine.Properties["chapters"] = int64(1)
			sync.RefreshDerivedState()
			So(f.view.chapters, ShouldBeFalse)
		})

		Convey("A rejected pause write is fatal", func() {
			f.engine.Fail["SetProperty:pause"] = errors.New("boom")
			sync.RefreshDerivedState()
			So(f.fatal.errs, ShouldHaveLength, 1)
			So(f.view.playing, ShouldBeEmpty)
		})

		Convey("Position is only reported while loaded", func() {
			f.engine.Properties["time-pos"] = 12.5
			So(sync.Position().IsAbsent(), ShouldBeTrue)

			ctx.Loaded = true
			So(sync.Position().OrEmpty(), ShouldEqual, 12.5)
		})
	})
}
