package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	logrus "github.com/sirupsen/logrus"
)

func TestLogLevel(t *testing.T) {
	Convey("Given engine log level names", t, func() {
		Convey("They parse in both directions", func() {
			for _, name := range []string{"no", "fatal", "error", "warn", "info", "v", "debug", "trace"} {
				level, err := ParseLogLevel(name)
				So(err, ShouldBeNil)
				So(level.String(), ShouldEqual, name)
			}
		})

		Convey("none is accepted as no", func() {
			level, err := ParseLogLevel("None")
			So(err, ShouldBeNil)
			So(level, ShouldEqual, LogNone)
		})

		Convey("Unknown names are rejected", func() {
			_, err := ParseLogLevel("loud")
			So(err, ShouldNotBeNil)
		})

		Convey("Levels map onto logrus", func() {
			So(LogError.Logrus(), ShouldEqual, logrus.ErrorLevel)
			So(LogWarn.Logrus(), ShouldEqual, logrus.WarnLevel)
			So(LogV.Logrus(), ShouldEqual, logrus.DebugLevel)
			So(LogTrace.Logrus(), ShouldEqual, logrus.TraceLevel)
		})
	})
}

func TestLogLevelFilters(t *testing.T) {
	Convey("Given log level filters", t, func() {
		filters, err := ParseLogLevelFilters([]string{"ffmpeg=warn", "cplayer=debug"})
		So(err, ShouldBeNil)
		So(filters, ShouldHaveLength, 2)

		Convey("Filtered modules use their own level", func() {
			So(filters.Allows("cplayer", LogDebug, LogError), ShouldBeTrue)
			So(filters.Allows("ffmpeg", LogInfo, LogError), ShouldBeFalse)
			So(filters.Allows("ffmpeg/demuxer", LogWarn, LogError), ShouldBeTrue)
		})

		Convey("Other modules use the fallback", func() {
			So(filters.Allows("vo", LogError, LogError), ShouldBeTrue)
			So(filters.Allows("vo", LogWarn, LogError), ShouldBeFalse)
			So(filters.Allows("ffmpegx", LogWarn, LogError), ShouldBeFalse)
		})

		Convey("The engine is asked for the most verbose level any filter needs", func() {
			So(filters.MostVerbose(LogError), ShouldEqual, LogDebug)
			So(filters.MostVerbose(LogTrace), ShouldEqual, LogTrace)
			So(LogLevelFilters(nil).MostVerbose(LogWarn), ShouldEqual, LogWarn)
		})

		Convey("Malformed entries are rejected", func() {
			for _, bad := range [][]string{{"ffmpeg"}, {"=warn"}, {"ffmpeg=loud"}, {"a=warn", "a=info"}} {
				_, err := ParseLogLevelFilters(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
