package playback

import (
	"fmt"

	"github.com/vireo-player/vireo/engine/enginetest"
)

type fakeView struct {
	calls     []string
	titles    []string
	errors    []string
	playing   []bool
	volume    float64
	length    float64
	chapters  bool
	controls  bool
	resized   [][2]int64
	resets    int
	quits     int
	onPlaying func()
}

func (v *fakeView) record(format string, args ...any) {
	v.calls = append(v.calls, fmt.Sprintf(format, args...))
}

func (v *fakeView) SetTitle(title string) {
	v.record("title %s", title)
	v.titles = append(v.titles, title)
}

func (v *fakeView) SetChapterEnabled(enabled bool) {
	v.record("chapters %t", enabled)
	v.chapters = enabled
}

func (v *fakeView) SetVolume(fraction float64) {
	v.record("volume %v", fraction)
	v.volume = fraction
}

func (v *fakeView) SetSeekBarLength(seconds float64) {
	v.record("length %v", seconds)
	v.length = seconds
}

func (v *fakeView) SetPlaying(playing bool) {
	v.record("playing %t", playing)
	v.playing = append(v.playing, playing)
	if v.onPlaying != nil {
		v.onPlaying()
	}
}

func (v *fakeView) SetControlsEnabled(enabled bool) {
	v.record("controls %t", enabled)
	v.controls = enabled
}

func (v *fakeView) Reset() {
	v.record("reset")
	v.resets++
}

func (v *fakeView) ResizeToFit(width, height int64, scale float64) {
	v.record("resize %dx%d@%v", width, height, scale)
	v.resized = append(v.resized, [2]int64{width, height})
}

func (v *fakeView) ShowError(message string) {
	v.record("error %q", message)
	v.errors = append(v.errors, message)
}

func (v *fakeView) Quit() {
	v.record("quit")
	v.quits++
}

type fatalRecorder struct {
	errs []error
}

func (f *fatalRecorder) handle(err error) {
	f.errs = append(f.errs, err)
}

type fixture struct {
	engine  *enginetest.Fake
	view    *fakeView
	fatal   *fatalRecorder
	session *Session
	drains  int
}

func newFixture(opts Options) *fixture {
	f := &fixture{
		engine: enginetest.New(),
		view:   &fakeView{},
		fatal:  &fatalRecorder{},
	}

	opts.Fatal = f.fatal.handle
	opts.Schedule = func() { f.drains++ }
	f.session = NewSession(f.engine, f.view, opts)
	f.engine.SetWakeupCallback(f.session.notifier.Notify)
	return f
}

// loadfiles returns the loadfile commands issued so far.
func (f *fixture) loadfiles() [][]string {
	var out [][]string
	for _, cmd := range f.engine.Commands() {
		if cmd[0] == "loadfile" {
			out = append(out, cmd)
		}
	}
	return out
}
