package util

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestFormatDuration(t *testing.T) {
	Convey("FormatDuration", t, func() {
		So(FormatDuration(0), ShouldEqual, "0:00")
		So(FormatDuration(65.7), ShouldEqual, "1:05")
		So(FormatDuration(3725), ShouldEqual, "1:02:05")
		So(FormatDuration(-3), ShouldEqual, "0:00")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(1.5, 0, 1), ShouldEqual, 1.0)
		So(Clamp(-2, 0, 10), ShouldEqual, 0)
		So(Clamp(4, 0, 10), ShouldEqual, 4)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		s := Stack[int]{Limit: 2}
		s.Push(1)
		s.Push(2)
		s.Push(3)
		So(s.Len(), ShouldEqual, 2)

		top, ok := s.Pop()
		So(ok, ShouldBeTrue)
		So(top, ShouldEqual, 3)

		top, _ = s.Pop()
		So(top, ShouldEqual, 2)

		_, ok = s.Pop()
		So(ok, ShouldBeFalse)
	})
}

func TestResolveMediaPath(t *testing.T) {
	Convey("ResolveMediaPath", t, func() {
		So(ResolveMediaPath("https://example.com/a.mp4"), ShouldEqual, "https://example.com/a.mp4")
		So(ResolveMediaPath("/srv/a.mp4"), ShouldEqual, "/srv/a.mp4")

		wd, err := os.Getwd()
		So(err, ShouldBeNil)
		So(ResolveMediaPath("a.mp4"), ShouldEqual, filepath.Join(wd, "a.mp4"))

		home, err := os.UserHomeDir()
		if err == nil {
			So(ResolveMediaPath("~/a.mp4"), ShouldEqual, filepath.Join(home, "a.mp4"))
		}
	})
}
