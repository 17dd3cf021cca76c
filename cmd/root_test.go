package cmd

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vireo-player/vireo/playback"
)

func TestErrorMessage(t *testing.T) {
	Convey("Given errors reaching the command line", t, func() {
		Convey("Engine failures are printed with their call stack", func() {
			err := &playback.FatalError{Err: errors.Wrap(errors.New("property unavailable"), "observe pause")}

			message := errorMessage(fmt.Errorf("run: %w", err))
			So(message, ShouldStartWith, "engine API error: property unavailable")
			So(message, ShouldContainSubstring, "observe pause")
			So(message, ShouldContainSubstring, "root_test.go:")
		})

		Convey("Other errors stay on one line", func() {
			message := errorMessage(errors.New("  no such file\n"))
			So(message, ShouldEndWith, "no such file")
			So(message, ShouldNotContainSubstring, "\n")
		})
	})
}
