package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/penwyp/go-linechart/internal/util"
)

// EventType distinguishes keys from mouse reports
type EventType int

const (
	EventKey EventType = iota
	EventMouse
)

// MouseAction is the kind of a mouse report
type MouseAction int

const (
	MouseMove MouseAction = iota
	MousePress
	MouseRelease
)

// Event is one decoded terminal input
type Event struct {
	Type  EventType
	Key   rune
	Mouse Mouse
}

// Mouse is an SGR mouse report. Row and Col are 1-based cells.
type Mouse struct {
	Action MouseAction
	Button int
	Row    int
	Col    int
}

const (
	KeyCtrlC  = 3
	KeyEscape = 27
)

// Reader decodes keyboard and mouse input from a terminal in raw mode
type Reader struct {
	in       *os.File
	oldState *unix.Termios
	events   chan Event
	stop     chan struct{}
	once     sync.Once
}

// NewReader switches in to raw mode and starts decoding
func NewReader(in *os.File) (*Reader, error) {
	r := &Reader{
		in:     in,
		events: make(chan Event, 64),
		stop:   make(chan struct{}),
	}

	if err := r.enableRawMode(); err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}

	go r.readInput()
	return r, nil
}

func (r *Reader) readInput() {
	buf := make([]byte, 256)
	var rest []byte

	for {
		n, err := r.in.Read(buf)
		select {
		case <-r.stop:
			return
		default:
		}
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			util.LogDebugf("Input ended: %v", err)
			return
		}
		if err != nil || n == 0 {
			continue
		}

		data := append(rest, buf[:n]...)
		events, consumed := Parse(data)
		rest = append(rest[:0], data[consumed:]...)

		for _, ev := range events {
			select {
			case r.events <- ev:
			case <-r.stop:
				return
			}
		}
	}
}

// Parse decodes as many complete inputs from buf as possible and returns
// them with the number of bytes consumed. An incomplete trailing mouse
// report is left unconsumed.
func Parse(buf []byte) ([]Event, int) {
	var events []Event
	i := 0
	for i < len(buf) {
		if buf[i] != KeyEscape {
			events = append(events, Event{Type: EventKey, Key: rune(buf[i])})
			i++
			continue
		}

		if i+2 < len(buf) && buf[i+1] == '[' && buf[i+2] == '<' {
			ev, n, ok := parseSGRMouse(buf[i:])
			if n == 0 {
				// incomplete report
				return events, i
			}
			if ok {
				events = append(events, ev)
			}
			i += n
			continue
		}

		if i+1 < len(buf) && buf[i+1] == '[' {
			// other CSI sequences (arrows, focus) are skipped
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			if j == len(buf) {
				return events, i
			}
			i = j + 1
			continue
		}

		if i+1 == len(buf) {
			events = append(events, Event{Type: EventKey, Key: KeyEscape})
		}
		i++
	}
	return events, i
}

// parseSGRMouse decodes "ESC [ < b ; x ; y M|m". It returns the length of
// the report, 0 when the report is incomplete.
func parseSGRMouse(buf []byte) (Event, int, bool) {
	var fields [3]int
	field := 0
	start := 3
	for j := 3; j < len(buf); j++ {
		c := buf[j]
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' || c == 'M' || c == 'm':
			if field > 2 {
				return Event{}, j + 1, false
			}
			v, err := strconv.Atoi(string(buf[start:j]))
			if err != nil {
				return Event{}, j + 1, false
			}
			fields[field] = v
			field++
			start = j + 1
			if c == ';' {
				continue
			}
			if field != 3 {
				return Event{}, j + 1, false
			}
			return Event{Type: EventMouse, Mouse: decodeMouse(fields, c == 'm')}, j + 1, true
		default:
			return Event{}, j + 1, false
		}
	}
	return Event{}, 0, false
}

func decodeMouse(fields [3]int, release bool) Mouse {
	b := fields[0]
	m := Mouse{Button: b & 3, Col: fields[1], Row: fields[2]}
	switch {
	case release:
		m.Action = MouseRelease
	case b&32 != 0:
		m.Action = MouseMove
	default:
		m.Action = MousePress
	}
	return m
}

// Events returns the decoded input
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Close stops decoding and restores the terminal
func (r *Reader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.stop)
		err = r.disableRawMode()
		util.LogDebug("Input reader closed")
	})
	return err
}
