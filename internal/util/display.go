package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ClearScreen     = "\033[2J"     // Clear entire screen
	ClearScrollback = "\033[3J"     // Clear scrollback buffer
	MoveCursorHome  = "\033[H"      // Move cursor to home position
	HideCursor      = "\033[?25l"   // Hide cursor
	ShowCursor      = "\033[?25h"   // Show cursor
	EnterAltScreen  = "\033[?1049h" // Switch to the alternate screen buffer
	ExitAltScreen   = "\033[?1049l" // Return to the normal screen buffer
)

// Any-motion mouse tracking with SGR extended coordinates
const (
	EnableMouseTracking  = "\033[?1003h\033[?1006h"
	DisableMouseTracking = "\033[?1006l\033[?1003l"
)

// GetDisplayWidth calculates the display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads text with spaces to the given display width
func PadRight(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// MoveCursor returns ANSI sequence to move cursor to specific position (1-based)
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// ParseHexColor parses #rgb, #rrggbb and #rrggbbaa color tokens. Alpha is ignored.
func ParseHexColor(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6, 8:
		s = s[:6]
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Foreground returns the 24-bit foreground sequence of rgb
func Foreground(r, g, b uint8) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// Background returns the 24-bit background sequence of rgb
func Background(r, g, b uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// HexForeground returns the foreground sequence of a hex color token, or
// an empty string when the token does not parse.
func HexForeground(hex string) string {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return ""
	}
	return Foreground(r, g, b)
}
