package tooltip

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/util"
)

// Layout maps surface-local logical pixels to terminal cells
type Layout struct {
	OriginRow  int     // 1-based terminal row of the surface's top edge
	OriginCol  int     // 1-based terminal column of the surface's left edge
	CellWidth  float64 // logical pixels per column
	CellHeight float64 // logical pixels per row
	Rows       int     // terminal size used for clamping
	Cols       int
}

// Terminal draws the tooltip as a box of text cells. Show and Hide only
// record the state; Render writes it after the raster has been presented.
type Terminal struct {
	layout  Layout
	visible bool
	anchor  model.Anchor
	data    model.TooltipData
}

// NewTerminal creates a hidden terminal tooltip
func NewTerminal(layout Layout) *Terminal {
	return &Terminal{layout: layout}
}

// SetLayout updates the cell mapping, e.g. after a terminal resize
func (t *Terminal) SetLayout(layout Layout) {
	t.layout = layout
}

func (t *Terminal) Show(anchor model.Anchor, data model.TooltipData) {
	t.visible = true
	t.anchor = anchor
	t.data = data
}

func (t *Terminal) Hide() {
	t.visible = false
}

// Visible reports whether the last call was Show
func (t *Terminal) Visible() bool {
	return t.visible
}

// Lines returns the box rows without positioning sequences
func (t *Terminal) Lines() []string {
	rows := []string{t.data.Title}
	for _, item := range t.data.Items {
		rows = append(rows, fmt.Sprintf("● %s %s", item.Name, strconv.FormatFloat(item.Value, 'f', -1, 64)))
	}

	width := 0
	for _, row := range rows {
		width = max(width, util.GetDisplayWidth(row))
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "┌"+strings.Repeat("─", width+2)+"┐")
	for _, row := range rows {
		lines = append(lines, "│ "+util.PadRight(row, width)+" │")
	}
	lines = append(lines, "└"+strings.Repeat("─", width+2)+"┘")
	return lines
}

// Position returns the 1-based row and column of the box's top-left corner.
// The box sits right of and below the anchor and is kept on screen.
func (t *Terminal) Position(lines []string) (row, col int) {
	l := t.layout
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return 1, 1
	}
	col = l.OriginCol + int(t.anchor.Left/l.CellWidth) + 2
	row = l.OriginRow + int(t.anchor.Top/l.CellHeight) + 1

	width := 0
	if len(lines) > 0 {
		width = util.GetDisplayWidth(lines[0])
	}
	if l.Cols > 0 && col+width-1 > l.Cols {
		col = max(1, col-width-4)
	}
	if l.Rows > 0 && row+len(lines)-1 > l.Rows {
		row = max(1, l.Rows-len(lines)+1)
	}
	return row, col
}

// Render writes the box to w when visible
func (t *Terminal) Render(w io.Writer) error {
	if !t.visible {
		return nil
	}

	lines := t.Lines()
	row, col := t.Position(lines)

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(util.MoveCursor(row+i, col))
		if i >= 2 && i-2 < len(t.data.Items) {
			item := t.data.Items[i-2]
			line = strings.Replace(line, "●", util.HexForeground(item.Color)+"●"+util.ColorReset, 1)
		}
		if i == 1 && t.data.Title != "" {
			line = strings.Replace(line, t.data.Title, util.ColorBold+t.data.Title+util.ColorReset, 1)
		}
		b.WriteString(line)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
