package render

import (
	"math"
	"strconv"

	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/geometry"
	"github.com/penwyp/go-linechart/internal/core/model"
)

// Viewport describes the raster area a chart is drawn into
type Viewport struct {
	Width      float64 // raster width
	Height     float64 // raster height
	ViewWidth  float64
	ViewHeight float64
	Padding    float64 // vertical padding above and below the view
}

// ChartViewport is the viewport of the main chart
func ChartViewport() Viewport {
	return Viewport{
		Width:      constants.ChartDPIWidth,
		Height:     constants.ChartDPIHeight,
		ViewWidth:  constants.ChartViewWidth,
		ViewHeight: constants.ChartViewHeight,
		Padding:    constants.ChartPadding,
	}
}

// SliderViewport is the viewport of a slider thumbnail of the given raster width
func SliderViewport(width float64) Viewport {
	return Viewport{
		Width:      width,
		Height:     constants.SliderDPIHeight,
		ViewWidth:  width,
		ViewHeight: constants.SliderDPIHeight,
	}
}

// Clear erases the whole viewport
func Clear(s Surface, vp Viewport) {
	s.ClearRect(0, 0, vp.Width, vp.Height)
}

// Line strokes a polyline through points
func Line(s Surface, points []model.Point, color string) {
	s.BeginPath()
	s.Save()
	s.SetLineWidth(constants.LineWidth)
	s.SetStrokeStyle(color)
	for _, p := range points {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
	s.Restore()
	s.ClosePath()
}

// Circle draws a white-filled marker outlined with color
func Circle(s Surface, p model.Point, color string, radius float64) {
	s.BeginPath()
	s.Save()
	s.SetStrokeStyle(color)
	s.SetFillStyle(constants.MarkerFill)
	s.Arc(p.X, p.Y, radius, 0, math.Pi*2)
	s.Fill()
	s.Stroke()
	s.Restore()
	s.ClosePath()
}

// YAxis draws the horizontal grid lines and their value labels, one per row
// from the top of the view to its bottom.
func YAxis(s Surface, vp Viewport, b geometry.Bounds) {
	textStep := (b.Max - b.Min) / constants.RowsCount
	step := vp.ViewHeight / constants.RowsCount

	s.BeginPath()
	s.SetLineWidth(constants.GridLineWidth)
	s.SetStrokeStyle(constants.GridColor)
	s.SetFont(constants.FontSize, constants.FontFamily)
	s.SetFillStyle(constants.LabelColor)
	for i := 1; i <= constants.RowsCount; i++ {
		y := step*float64(i) + vp.Padding
		s.FillText(formatValue(b.Max-textStep*float64(i)), constants.LabelInset, y-constants.LabelBaseline)
		s.MoveTo(0, y)
		s.LineTo(vp.Width, y)
	}
	s.Stroke()
	s.ClosePath()
}

// XAxis stamps a date label on every step-th sample and strokes the
// crosshair at the first sample under the cursor. It returns the index of
// that sample, or -1.
func XAxis(s Surface, vp Viewport, timestamps []float64, xRatio float64, cursor *model.Cursor) int {
	step := DateStep(len(timestamps))
	hit := -1

	s.BeginPath()
	s.SetStrokeStyle(constants.GridColor)
	s.SetLineWidth(constants.AxisLineWidth)
	s.SetFont(constants.FontSize, constants.FontFamily)
	s.SetFillStyle(constants.LabelColor)
	for i, ts := range timestamps {
		x := float64(i) * xRatio
		if (i-1)%step == 0 {
			s.FillText(geometry.ToDate(ts), x, vp.Height-constants.LabelBaseline)
		}
		if hit < 0 && geometry.IsOver(cursor, x, len(timestamps), vp.Width) {
			s.Save()
			s.MoveTo(x, vp.Padding/2)
			s.LineTo(x, vp.Height-vp.Padding)
			s.Restore()
			hit = i
		}
	}
	s.Stroke()
	s.ClosePath()
	return hit
}

// DateStep is the sample distance between two date labels
func DateStep(samples int) int {
	step := int(math.Floor(float64(samples)/constants.ColsCount + 0.5))
	if step < 1 {
		return 1
	}
	return step
}

// formatValue rounds half up like the grid labels expect
func formatValue(v float64) string {
	return strconv.FormatFloat(math.Floor(v+0.5), 'f', -1, 64)
}
