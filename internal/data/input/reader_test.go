package input

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Event
		consumed int
	}{
		{
			name:     "regular char",
			input:    "q",
			expected: []Event{{Type: EventKey, Key: 'q'}},
			consumed: 1,
		},
		{
			name:     "ctrl+c",
			input:    "\x03",
			expected: []Event{{Type: EventKey, Key: KeyCtrlC}},
			consumed: 1,
		},
		{
			name:     "lone escape",
			input:    "\x1b",
			expected: []Event{{Type: EventKey, Key: KeyEscape}},
			consumed: 1,
		},
		{
			name:  "mouse motion",
			input: "\x1b[<35;12;7M",
			expected: []Event{{Type: EventMouse, Mouse: Mouse{
				Action: MouseMove, Button: 3, Col: 12, Row: 7,
			}}},
			consumed: 11,
		},
		{
			name:  "left press and release",
			input: "\x1b[<0;40;30M\x1b[<0;41;30m",
			expected: []Event{
				{Type: EventMouse, Mouse: Mouse{Action: MousePress, Button: 0, Col: 40, Row: 30}},
				{Type: EventMouse, Mouse: Mouse{Action: MouseRelease, Button: 0, Col: 41, Row: 30}},
			},
			consumed: 22,
		},
		{
			name:  "drag",
			input: "\x1b[<32;5;6M",
			expected: []Event{{Type: EventMouse, Mouse: Mouse{
				Action: MouseMove, Button: 0, Col: 5, Row: 6,
			}}},
			consumed: 10,
		},
		{
			name:     "arrow key skipped",
			input:    "\x1b[Ar",
			expected: []Event{{Type: EventKey, Key: 'r'}},
			consumed: 4,
		},
		{
			name:     "incomplete report",
			input:    "a\x1b[<35;12",
			expected: []Event{{Type: EventKey, Key: 'a'}},
			consumed: 1,
		},
		{
			name:     "malformed report",
			input:    "\x1b[<1;2Mq",
			expected: []Event{{Type: EventKey, Key: 'q'}},
			consumed: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, consumed := Parse([]byte(tt.input))
			assert.Equal(t, tt.expected, events)
			assert.Equal(t, tt.consumed, consumed)
		})
	}
}

func TestParseResumesSplitReport(t *testing.T) {
	first := []byte("\x1b[<35;1")
	events, consumed := Parse(first)
	assert.Empty(t, events)
	assert.Equal(t, 0, consumed)

	data := append(first[consumed:], []byte("0;4M")...)
	events, consumed = Parse(data)
	assert.Equal(t, []Event{{Type: EventMouse, Mouse: Mouse{Action: MouseMove, Button: 3, Col: 10, Row: 4}}}, events)
	assert.Equal(t, len(data), consumed)
}

func TestReadInputStopsAtEndOfInput(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()

	r := &Reader{in: pr, events: make(chan Event, 64), stop: make(chan struct{})}
	done := make(chan struct{})
	go func() {
		r.readInput()
		close(done)
	}()

	_, err = pw.Write([]byte("r"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader kept running after end of input")
	}
	assert.Equal(t, Event{Type: EventKey, Key: 'r'}, <-r.Events())
}
