package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/playlist"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a playlist", t, func() {
		entries := []playlist.Entry{
			{Name: "a.mp3", URI: "/m/a.mp3"},
			{Name: "b.mp3", URI: "/m/b.mp3", Current: true},
			{Name: "c.mp3", URI: "/m/c.mp3"},
		}

		Convey("When it is saved", func() {
			So(Save(entries, 42.5), ShouldBeNil)

			Convey("It can be read back", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldNotBeNil)
				So(saved.Entries, ShouldHaveLength, 3)
				So(saved.Current, ShouldEqual, 1)
				So(saved.Position, ShouldEqual, 42.5)

				Convey("Resuming starts from the entry that was playing", func() {
					So(saved.URIs(), ShouldResemble, []string{"/m/b.mp3", "/m/c.mp3", "/m/a.mp3"})
				})
			})

			Convey("Saving an empty playlist forgets it", func() {
				So(Save(nil, 0), ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldBeNil)
			})
		})

		Convey("Without a current entry resuming keeps the order", func() {
			entries[1].Current = false
			So(Save(entries, 0), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved.URIs(), ShouldResemble, []string{"/m/a.mp3", "/m/b.mp3", "/m/c.mp3"})
		})
	})
}
