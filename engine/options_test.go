package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseArgs(t *testing.T) {
	Convey("Given an option string", t, func() {
		Convey("Flags, values and empty values are split into options", func() {
			opts := ParseArgs("--a --b=1 --c=  ")
			So(opts, ShouldResemble, []Option{
				{Name: "a", Value: "yes"},
				{Name: "b", Value: "1"},
				{Name: "c", Value: "yes"},
			})
		})

		Convey("A space separates a name from its value", func() {
			opts := ParseArgs("--volume 50 --mute")
			So(opts, ShouldResemble, []Option{
				{Name: "volume", Value: "50"},
				{Name: "mute", Value: "yes"},
			})
		})

		Convey("Leading text and repeated spaces are ignored", func() {
			opts := ParseArgs("junk   --vo=gpu    --hwdec=auto\n")
			So(opts, ShouldResemble, []Option{
				{Name: "vo", Value: "gpu"},
				{Name: "hwdec", Value: "auto"},
			})
		})

		Convey("Values may contain dashes", func() {
			opts := ParseArgs("--ytdl-format=best-video")
			So(opts, ShouldResemble, []Option{{Name: "ytdl-format", Value: "best-video"}})
		})

		Convey("Without any -- there is nothing to parse", func() {
			So(ParseArgs("vo=gpu mute"), ShouldBeEmpty)
			So(ParseArgs(""), ShouldBeEmpty)
		})
	})
}

func TestApplyArgs(t *testing.T) {
	Convey("Given a client that rejects one option", t, func() {
		c := &optionRecorder{reject: "bogus"}

		Convey("The others still apply and the failure is counted", func() {
			failed := ApplyArgs(c, "--mute --bogus=1 --volume=20")
			So(failed, ShouldEqual, 1)
			So(c.applied, ShouldResemble, []string{"mute=yes", "volume=20"})
		})

		Convey("No options means no calls and no failures", func() {
			So(ApplyArgs(c, "nothing here"), ShouldEqual, 0)
			So(c.applied, ShouldBeEmpty)
		})
	})
}

// optionRecorder satisfies Client through an embedded nil interface; only option setters are used.
type optionRecorder struct {
	Client
	reject  string
	applied []string
}

func (o *optionRecorder) SetOptionString(name, value string) error {
	if name == o.reject {
		return &Error{Op: "set_property", Name: name, Code: "option not found"}
	}
	o.applied = append(o.applied, name+"="+value)
	return nil
}
