package playback

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestControls(t *testing.T) {
	Convey("Given transport controls", t, func() {
		f := newFixture(Options{})
		controls := f.session.Controls()

		Convey("Toggling pause pushes the new intent", func() {
			controls.TogglePause()
			So(f.session.Context().Paused, ShouldBeTrue)
			So(f.engine.Properties["pause"], ShouldEqual, true)

			controls.TogglePause()
			So(f.engine.Properties["pause"], ShouldEqual, false)
		})

		Convey("Navigation maps onto engine commands", func() {
			controls.Seek(-10)
			controls.SeekTo(90.5)
			controls.NextChapter()
			controls.PrevChapter()
			controls.Next()
			controls.Prev()
			controls.ToggleFullscreen()
			controls.Screenshot()
			controls.Quit()

			So(f.engine.Commands(), ShouldResemble, [][]string{
				{"seek", "-10", "relative"},
				{"seek", "90.5", "absolute"},
				{"add", "chapter", "1"},
				{"add", "chapter", "-1"},
				{"playlist-next"},
				{"playlist-prev"},
				{"cycle", "fullscreen"},
				{"screenshot"},
				{"quit"},
			})
		})

		Convey("Volume is clamped and scaled", func() {
			controls.SetVolume(1.4)
			So(f.engine.Properties["volume"], ShouldEqual, 100.0)

			controls.SetVolume(0.25)
			So(f.engine.Properties["volume"], ShouldEqual, 25.0)
		})

		Convey("Window scale is written as a property", func() {
			controls.SetWindowScale(1.5)
			So(f.engine.Properties["window-scale"], ShouldEqual, 1.5)
		})

		Convey("Refused navigation is not fatal", func() {
			f.engine.Fail["Command:playlist-next"] = errors.New("no next entry")
			controls.Next()
			So(f.fatal.errs, ShouldBeEmpty)
		})
	})
}
