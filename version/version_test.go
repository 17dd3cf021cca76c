package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cmp := func(a, b string) int {
			c, err := Compare(a, b)
			So(err, ShouldBeNil)
			return c
		}

		So(cmp("0.38.0", "0.33.0"), ShouldEqual, 1)
		So(cmp("v0.32.1", "0.33.0"), ShouldEqual, -1)
		So(cmp("0.33", "0.33.0"), ShouldEqual, 0)
		So(cmp("0.37.0-640-g1234", "0.37.0"), ShouldEqual, 0)

		_, err := Compare("git", "0.33.0")
		So(err, ShouldNotBeNil)
	})
}

func TestParseEngine(t *testing.T) {
	Convey("Given engine version banners", t, func() {
		Convey("Then release builds are recognized", func() {
			v, err := parseEngine("mpv 0.38.0 Copyright © 2000-2024 mpv/MPlayer/mplayer2 projects\n built on ...")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.38.0")
		})

		Convey("Then git builds are recognized", func() {
			v, err := parseEngine("mpv v0.36.0-382-gc7e8a1f Copyright © 2000-2023")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.36.0")
		})

		Convey("Then anything else is rejected", func() {
			_, err := parseEngine("mplayer 1.5")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSupported(t *testing.T) {
	Convey("Supported", t, func() {
		So(Supported("0.38.0"), ShouldBeTrue)
		So(Supported(MinEngine), ShouldBeTrue)
		So(Supported("0.32.0"), ShouldBeFalse)
		So(Supported("unknown"), ShouldBeTrue)
	})
}
