package render

import (
	"math"
	"testing"

	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/geometry"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/testing/fakes"
	"github.com/penwyp/go-linechart/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	s := fakes.NewSurface(1200, 400)
	Line(s, []model.Point{{X: 0, Y: 10}, {X: 400, Y: 20}, {X: 800, Y: 5}}, "#3DC23F")

	assert.Len(t, s.Find("LineTo"), 3)
	strokes := s.Find("Stroke")
	require.Len(t, strokes, 1)
	assert.Equal(t, "#3DC23F", strokes[0].Color)
	assert.Equal(t, float64(constants.LineWidth), strokes[0].Width)
	assert.Empty(t, s.Find("Fill"))
}

func TestLineRestoresStyle(t *testing.T) {
	s := fakes.NewSurface(1200, 400)
	s.SetLineWidth(2)
	s.SetStrokeStyle("#bbb")

	Line(s, []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, "#F34C44")
	s.Stroke()

	strokes := s.Find("Stroke")
	require.Len(t, strokes, 2)
	assert.Equal(t, "#bbb", strokes[1].Color)
	assert.Equal(t, 2.0, strokes[1].Width)
}

func TestCircle(t *testing.T) {
	s := fakes.NewSurface(1200, 400)
	Circle(s, model.Point{X: 800, Y: 60}, "#3DC23F", constants.CircleRadius)

	arcs := s.Find("Arc")
	require.Len(t, arcs, 1)
	assert.Equal(t, []float64{800, 60, constants.CircleRadius, 0, math.Pi * 2}, arcs[0].Args)

	fills := s.Find("Fill")
	require.Len(t, fills, 1)
	assert.Equal(t, constants.MarkerFill, fills[0].Color)
	assert.Equal(t, "#3DC23F", s.Find("Stroke")[0].Color)
}

func TestYAxis(t *testing.T) {
	s := fakes.NewSurface(1200, 400)
	YAxis(s, ChartViewport(), geometry.Bounds{Min: 0, Max: 100})

	assert.Equal(t, []string{"80", "60", "40", "20", "0"}, s.Texts())
	moves := s.Find("MoveTo")
	require.Len(t, moves, constants.RowsCount)
	// rows are spaced by view height / rows starting below the padding
	assert.Equal(t, []float64{0, 104}, moves[0].Args)
	assert.Equal(t, []float64{0, 360}, moves[4].Args)

	strokes := s.Find("Stroke")
	require.Len(t, strokes, 1)
	assert.Equal(t, constants.GridColor, strokes[0].Color)
}

func TestYAxisRoundsLabels(t *testing.T) {
	s := fakes.NewSurface(1200, 400)
	YAxis(s, ChartViewport(), geometry.Bounds{Min: 5, Max: 20})

	assert.Equal(t, []string{"17", "14", "11", "8", "5"}, s.Texts())
}

func TestXAxis(t *testing.T) {
	require.NoError(t, util.InitializeTimeProvider("UTC"))
	defer util.InitializeTimeProvider("Local")

	day := 86400000.0
	start := 1542412800000.0
	timestamps := make([]float64, 12)
	for i := range timestamps {
		timestamps[i] = start + float64(i)*day
	}
	xRatio := geometry.XRatio(constants.ChartViewWidth, len(timestamps))

	t.Run("labels every step-th sample without cursor", func(t *testing.T) {
		s := fakes.NewSurface(1200, 400)
		hit := XAxis(s, ChartViewport(), timestamps, xRatio, nil)

		assert.Equal(t, -1, hit)
		assert.Equal(t, 2, DateStep(len(timestamps)))
		assert.Equal(t, []string{"Nov 18", "Nov 20", "Nov 22", "Nov 24", "Nov 26", "Nov 28"}, s.Texts())
		assert.Empty(t, s.Find("MoveTo"))
	})

	t.Run("crosshair at hovered sample", func(t *testing.T) {
		s := fakes.NewSurface(1200, 400)
		cursor := &model.Cursor{X: 3 * xRatio}
		hit := XAxis(s, ChartViewport(), timestamps, xRatio, cursor)

		assert.Equal(t, 3, hit)
		moves := s.Find("MoveTo")
		require.Len(t, moves, 1)
		assert.Equal(t, []float64{3 * xRatio, constants.ChartPadding / 2}, moves[0].Args)
		lines := s.Find("LineTo")
		require.Len(t, lines, 1)
		assert.Equal(t, []float64{3 * xRatio, constants.ChartDPIHeight - constants.ChartPadding}, lines[0].Args)
	})
}

func TestDateStep(t *testing.T) {
	assert.Equal(t, 1, DateStep(0))
	assert.Equal(t, 1, DateStep(2))
	assert.Equal(t, 1, DateStep(4))
	assert.Equal(t, 2, DateStep(12))
	assert.Equal(t, 19, DateStep(112))
}
