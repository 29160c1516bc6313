package tooltip

import (
	"bytes"
	"testing"

	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() model.TooltipData {
	return model.TooltipData{
		Title: "Nov 19",
		Items: []model.TooltipItem{
			{Color: "#3DC23F", Name: "Joined", Value: 15},
			{Color: "#F34C44", Name: "Left", Value: 2.5},
		},
	}
}

func TestTerminalLines(t *testing.T) {
	tip := NewTerminal(Layout{})
	tip.Show(model.Anchor{}, sampleData())

	lines := tip.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, "│ Nov 19      │", lines[1])
	assert.Equal(t, "│ ● Joined 15 │", lines[2])
	assert.Equal(t, "│ ● Left 2.5  │", lines[3])
	for _, line := range lines {
		assert.Equal(t, util.GetDisplayWidth(lines[0]), util.GetDisplayWidth(line))
	}
}

func TestTerminalShowHide(t *testing.T) {
	tip := NewTerminal(Layout{OriginRow: 1, OriginCol: 1, CellWidth: 10, CellHeight: 20, Rows: 24, Cols: 80})

	var buf bytes.Buffer
	require.NoError(t, tip.Render(&buf))
	assert.Empty(t, buf.String())

	tip.Show(model.Anchor{Left: 100, Top: 40}, sampleData())
	assert.True(t, tip.Visible())
	require.NoError(t, tip.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, util.MoveCursor(4, 13))
	assert.Contains(t, out, util.HexForeground("#3DC23F")+"●")
	assert.Contains(t, out, "Joined 15")

	tip.Hide()
	buf.Reset()
	require.NoError(t, tip.Render(&buf))
	assert.Empty(t, buf.String())
}

func TestTerminalPositionStaysOnScreen(t *testing.T) {
	tip := NewTerminal(Layout{OriginRow: 1, OriginCol: 1, CellWidth: 10, CellHeight: 20, Rows: 10, Cols: 40})
	tip.Show(model.Anchor{Left: 390, Top: 190}, sampleData())

	lines := tip.Lines()
	row, col := tip.Position(lines)
	width := util.GetDisplayWidth(lines[0])

	assert.LessOrEqual(t, col+width-1, 40)
	assert.LessOrEqual(t, row+len(lines)-1, 10)
	assert.GreaterOrEqual(t, col, 1)
	assert.GreaterOrEqual(t, row, 1)
}

func TestNop(t *testing.T) {
	var tip Tooltip = Nop{}
	tip.Show(model.Anchor{}, sampleData())
	tip.Hide()
}
