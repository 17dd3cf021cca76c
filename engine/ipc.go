package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vireo-player/vireo/log"
)

// ipcRequest is the JSON structure sent to mpv's IPC socket.
type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// ipcMessage is anything mpv writes back: a reply carries request_id, an event carries event.
type ipcMessage struct {
	RequestID int64  `json:"request_id"`
	Error     string `json:"error"`
	Data      any    `json:"data"`

	Event  string `json:"event"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Level  string `json:"level"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

const (
	dialRetries  = 3
	dialDelay    = 100 * time.Millisecond
	replyTimeout = 5 * time.Second
	maxLineSize  = 16 << 20
)

// conn is one persistent connection to mpv. Requests are multiplexed over it by
// request_id; events are handed to onEvent from the read goroutine.
type conn struct {
	nc      net.Conn
	writeMu sync.Mutex
	nextID  atomic.Int64

	mu      sync.Mutex
	pending map[int64]chan ipcMessage

	closed    chan struct{}
	closeOnce sync.Once
}

// dialIPC connects to the socket, retrying transient failures.
func dialIPC(socketPath string) (net.Conn, error) {
	var lastErr error

	for attempt := 0; attempt < dialRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(dialDelay)
		}

		nc, err := net.Dial("unix", socketPath)
		if err == nil {
			return nc, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc connect failed after %d attempts: %w", dialRetries, lastErr)
}

func newConn(nc net.Conn) *conn {
	return &conn{
		nc:      nc,
		pending: make(map[int64]chan ipcMessage),
		closed:  make(chan struct{}),
	}
}

// call sends one command and waits for its reply.
func (c *conn) call(args ...any) (any, error) {
	id := c.nextID.Add(1)
	reply := make(chan ipcMessage, 1)

	c.mu.Lock()
	c.pending[id] = reply
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	payload, err := json.Marshal(ipcRequest{Command: args, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	c.writeMu.Lock()
	_, err = c.nc.Write(append(payload, '\n'))
	c.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	select {
	case msg := <-reply:
		if msg.Error != "" && msg.Error != codeSuccess {
			return nil, &Error{Op: fmt.Sprint(args[0]), Name: commandSubject(args), Code: msg.Error}
		}
		return msg.Data, nil
	case <-c.closed:
		return nil, ErrClosed
	case <-time.After(replyTimeout):
		return nil, fmt.Errorf("%v: no reply after %s", args[0], replyTimeout)
	}
}

// readLoop reads newline-delimited JSON until the connection drops, then closes c.
func (c *conn) readLoop(onEvent func(ipcMessage)) {
	defer c.close()

	scanner := bufio.NewScanner(c.nc)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var msg ipcMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			log.Warnf("ipc: skipping unparseable line: %s", err)
			continue
		}

		if msg.Event != "" {
			onEvent(msg)
			continue
		}

		c.mu.Lock()
		reply, ok := c.pending[msg.RequestID]
		c.mu.Unlock()

		if ok {
			reply <- msg
		}
	}

	if err := scanner.Err(); err != nil {
		log.Warnf("ipc read error: %s", err)
	}
}

func (c *conn) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.nc.Close()
	})
}

func commandSubject(args []any) string {
	switch {
	case len(args) > 2 && args[0] == "observe_property":
		return fmt.Sprint(args[2])
	case len(args) > 1:
		return fmt.Sprint(args[1])
	default:
		return ""
	}
}
