package engine

import (
	"crypto/rand"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vireo-player/vireo/constant"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/where"
	"golang.org/x/exp/slices"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second

	// idleObserverID is reserved for the internal idle-active subscription.
	idleObserverID = 1
)

// Option names the engine no longer accepts. None means the behavior is implicit.
var legacyOptions = map[string]mo.Option[string]{
	"softvol":     mo.None[string](),
	"softvol-max": mo.Some("volume-max"),
}

// Options mpv only reads before its first file. They are fixed on the command line in
// Create; setting one later succeeds only when it asks for the launch value.
var launchOptions = map[string]string{
	"config": "yes",
}

var legacyProperties = map[string]string{
	"length": "duration",
}

// MPV is a Client backed by an mpv process reached over its JSON IPC socket.
//
// The process starts idle on Create. Options set before Initialize are applied to the
// running process through the options/ property namespace, so each one succeeds or
// fails on its own. Video output is created on first playback and picks up wid then.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}

	conn  *conn
	queue *eventQueue

	observeID   atomic.Int64
	initialized atomic.Bool
	terminating atomic.Bool
	sawShutdown atomic.Bool
}

// NewMPV returns an unstarted handle for the given mpv executable.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = constant.Engine
	}

	m := &MPV{
		binary: binary,
		exited: make(chan struct{}),
		queue:  newEventQueue(),
	}
	m.observeID.Store(idleObserverID)
	return m
}

// Create starts the engine process and connects to it.
func (m *MPV) Create() error {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.Vireo, randomBytes))

	m.cmd = exec.Command(m.binary, launchArgs(m.socketPath)...)
	m.cmd.SysProcAttr = sysProcAttr()

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing %s: socket never became ready", m.binary)
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("%s socket not ready: %w", m.binary, err)
	}

	nc, err := dialIPC(m.socketPath)
	if err != nil {
		_ = killProcess(m.cmd)
		return err
	}

	m.conn = newConn(nc)
	go func() {
		m.conn.readLoop(m.onMessage)

		// mpv normally says goodbye itself; a dropped socket without it still ends the session.
		if !m.terminating.Load() && !m.sawShutdown.Load() {
			m.queue.push(Shutdown{})
		}
	}()

	if _, err := m.conn.call("observe_property", idleObserverID, "idle-active"); err != nil {
		return fmt.Errorf("observe idle-active: %w", err)
	}

	log.Infof("%s started on %s", m.binary, m.socketPath)
	return nil
}

func launchArgs(socketPath string) []string {
	args := []string{
		"--idle=yes",
		"--no-terminal",
		fmt.Sprintf("--input-ipc-server=%s", socketPath),
	}

	names := lo.Keys(launchOptions)
	slices.Sort(names)
	for _, name := range names {
		args = append(args, fmt.Sprintf("--%s=%s", name, launchOptions[name]))
	}
	return args
}

// waitForSocket polls until the IPC socket exists.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("%s exited before socket was ready", m.binary)
		default:
		}

		if _, err := os.Stat(m.socketPath); err == nil {
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

func (m *MPV) call(args ...any) (any, error) {
	if m.conn == nil {
		return nil, ErrNotCreated
	}
	return m.conn.call(args...)
}

// SetOptionString applies an option to the running process. Launch-only options are
// checked against the command line instead.
func (m *MPV) SetOptionString(name, value string) error {
	if launch, ok := launchOptions[name]; ok {
		if value != launch {
			return &Error{Op: "set_option", Name: name, Code: "only settable at launch"}
		}
		return nil
	}

	target, ok := translateOption(name)
	if !ok {
		log.Debugf("option %s is implicit, skipping", name)
		return nil
	}

	_, err := m.call("set_property", "options/"+target, value)
	return err
}

// SetOptionInt64 sets an integer option such as wid.
func (m *MPV) SetOptionInt64(name string, value int64) error {
	return m.SetOptionString(name, strconv.FormatInt(value, 10))
}

// ObserveProperty subscribes to changes of name under a fresh observer id.
func (m *MPV) ObserveProperty(name string) error {
	id := m.observeID.Add(1)
	_, err := m.call("observe_property", id, translateProperty(name))
	return err
}

// RequestLogMessages subscribes to engine log lines at level and above.
func (m *MPV) RequestLogMessages(level LogLevel) error {
	_, err := m.call("request_log_messages", level.String())
	return err
}

// LoadConfigFile applies an mpv configuration file to the running process.
func (m *MPV) LoadConfigFile(path string) error {
	_, err := m.call("load-config-file", path)
	return err
}

// Initialize fails if the process has already gone away; otherwise the handle is ready.
func (m *MPV) Initialize() error {
	if m.conn == nil {
		return ErrNotCreated
	}

	select {
	case <-m.exited:
		return fmt.Errorf("%s exited during setup", m.binary)
	default:
	}

	if _, err := m.call("get_property", "pid"); err != nil {
		return err
	}

	m.initialized.Store(true)
	return nil
}

// Command runs an input command and waits for its reply.
func (m *MPV) Command(args ...string) error {
	if len(args) == 0 {
		return &Error{Op: "command", Code: "empty command"}
	}

	_, err := m.call(lo.ToAnySlice(args)...)
	return err
}

// SetProperty sets a property, translating legacy names.
func (m *MPV) SetProperty(name string, value any) error {
	_, err := m.call("set_property", translateProperty(name), value)
	return err
}

// GetProperty reads a property, translating legacy names.
func (m *MPV) GetProperty(name string) (any, error) {
	return m.call("get_property", translateProperty(name))
}

// RequestEvent enables or disables delivery of one event kind.
func (m *MPV) RequestEvent(kind EventKind, enable bool) error {
	cmd := "disable_event"
	if enable {
		cmd = "enable_event"
	}

	_, err := m.call(cmd, string(kind))
	return err
}

// WaitEvent pops the next queued event, waiting up to timeout. It returns None when
// nothing arrives.
func (m *MPV) WaitEvent(timeout time.Duration) Event {
	return m.queue.pop(timeout)
}

// SetWakeupCallback registers fn to run, from the reader goroutine, after each queued event.
func (m *MPV) SetWakeupCallback(fn func()) {
	m.queue.setWakeup(fn)
}

// Terminate asks the process to quit, kills it if it lingers, and removes the socket.
func (m *MPV) Terminate() error {
	if m.cmd == nil || !m.terminating.CompareAndSwap(false, true) {
		return nil
	}

	if m.conn != nil {
		_, _ = m.conn.call("quit")
	}

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	if m.conn != nil {
		m.conn.close()
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

func (m *MPV) onMessage(msg ipcMessage) {
	ev, ok := classify(msg)
	if !ok {
		return
	}

	if ev.Kind() == EventShutdown {
		m.sawShutdown.Store(true)
	}
	m.queue.push(ev)
}

// classify turns a raw IPC event into a typed Event. The idle-active observer is
// surfaced as Idle when it turns true and dropped otherwise.
func classify(msg ipcMessage) (Event, bool) {
	switch EventKind(msg.Event) {
	case EventPropertyChange:
		if msg.ID == idleObserverID {
			if AsFlag(msg.Data) {
				return Idle{}, true
			}
			return nil, false
		}
		return PropertyChange{Name: msg.Name, Value: msg.Data}, true
	case EventLogMessage:
		level, err := ParseLogLevel(msg.Level)
		if err != nil {
			level = LogInfo
		}
		return LogMessage{Prefix: msg.Prefix, Level: level, Text: msg.Text}, true
	case EventShutdown:
		return Shutdown{}, true
	case EventStartFile:
		return StartFile{}, true
	case EventEndFile:
		return EndFile{Reason: msg.Reason}, true
	case EventFileLoaded:
		return FileLoaded{}, true
	case EventIdle:
		return Idle{}, true
	case EventVideoReconfig:
		return VideoReconfig{}, true
	case EventPlaybackRestart:
		return PlaybackRestart{}, true
	case "":
		return nil, false
	default:
		return Other{Name: EventKind(msg.Event)}, true
	}
}

func translateOption(name string) (string, bool) {
	legacy, ok := legacyOptions[name]
	if !ok {
		return name, true
	}
	return legacy.Get()
}

func translateProperty(name string) string {
	if current, ok := legacyProperties[name]; ok {
		return current
	}
	return name
}
