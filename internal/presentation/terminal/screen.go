package terminal

import (
	"bufio"
	"io"

	"github.com/penwyp/go-linechart/internal/util"
)

// Screen writes full frames to a terminal in the alternate screen buffer
type Screen struct {
	out               *bufio.Writer
	inAlternateScreen bool
}

// NewScreen creates a screen writing to w
func NewScreen(w io.Writer) *Screen {
	return &Screen{out: bufio.NewWriterSize(w, 64*1024)}
}

// Enter switches to the alternate screen, hides the cursor and enables
// mouse reporting
func (s *Screen) Enter() error {
	if s.inAlternateScreen {
		return nil
	}
	s.out.WriteString(util.EnterAltScreen)
	s.out.WriteString(util.ClearScreen)
	s.out.WriteString(util.MoveCursorHome)
	s.out.WriteString(util.HideCursor)
	s.out.WriteString(util.EnableMouseTracking)
	s.inAlternateScreen = true
	return s.out.Flush()
}

// Exit restores the normal screen
func (s *Screen) Exit() error {
	if !s.inAlternateScreen {
		return nil
	}
	s.out.WriteString(util.DisableMouseTracking)
	s.out.WriteString(util.ColorReset)
	s.out.WriteString(util.ClearScreen)
	s.out.WriteString(util.ShowCursor)
	s.out.WriteString(util.ExitAltScreen)
	s.inAlternateScreen = false
	return s.out.Flush()
}

// Clear erases the screen
func (s *Screen) Clear() {
	s.out.WriteString(util.ColorReset)
	s.out.WriteString(util.ClearScreen)
}

// Draw writes lines starting at the 1-based cell position
func (s *Screen) Draw(row, col int, lines []string) {
	for i, line := range lines {
		s.out.WriteString(util.MoveCursor(row+i, col))
		s.out.WriteString(line)
	}
}

// Writer exposes the frame buffer for components rendering themselves
func (s *Screen) Writer() io.Writer {
	return s.out
}

// Flush sends the buffered frame to the terminal
func (s *Screen) Flush() error {
	return s.out.Flush()
}
