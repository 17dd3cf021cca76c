package open

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRevealTarget(t *testing.T) {
	Convey("Given playlist URIs", t, func() {
		Convey("Then web URLs are opened as they are", func() {
			So(revealTarget("https://example.com/v.mp4"), ShouldEqual, "https://example.com/v.mp4")
		})

		Convey("Then local files reveal their directory", func() {
			So(revealTarget(filepath.Join("/srv", "music", "a.flac")), ShouldEqual, filepath.Join("/srv", "music"))
			So(revealTarget("file:///srv/music/a.flac"), ShouldEqual, filepath.FromSlash("/srv/music"))
		})
	})
}
