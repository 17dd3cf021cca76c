package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		Reset(SetMemMapFs)

		So(API().Name(), ShouldEqual, "MemMapFS")

		Convey("GacheFs writes through it", func() {
			var fs GacheFs
			So(fs.MkdirAll("/cache/vireo", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("/cache/vireo/session.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/cache/vireo/session.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})

		Convey("SetOsFs restores the real filesystem", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})
	})
}
