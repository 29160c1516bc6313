package geometry

import (
	"math"

	"github.com/penwyp/go-linechart/internal/core/model"
)

// Projection converts (index, value) pairs of a series into raster points.
//
//	x = floor(index * XRatio)
//	y = floor(Height - Padding - Lift - (value - Baseline) * YRatio)
//
// The main chart projects with a zero Baseline, the slider thumbnail with the
// series minimum. Lift is only set for flat ranges, see NewProjection.
type Projection struct {
	XRatio   float64
	YRatio   float64
	Height   float64
	Padding  float64
	Baseline float64
	Lift     float64
}

// XRatio returns the horizontal scale for a series with the given number of
// samples. Fewer than two samples fall back to the full view width.
func XRatio(viewWidth float64, samples int) float64 {
	if samples < 2 {
		return viewWidth
	}
	return viewWidth / float64(samples-1)
}

// YRatio returns the vertical scale for the range and whether the range is
// flat. A flat range has a zero ratio.
func YRatio(viewHeight float64, b Bounds) (float64, bool) {
	if b.Flat() {
		return 0, true
	}
	return viewHeight / (b.Max - b.Min), false
}

// NewProjection builds the projection of a viewport. viewHeight is the
// drawable height, height the full raster height. When offset is true the
// values are measured from b.Min. A flat range is drawn centered in the
// viewport.
func NewProjection(viewWidth, viewHeight, height, padding float64, samples int, b Bounds, offset bool) Projection {
	yRatio, flat := YRatio(viewHeight, b)
	p := Projection{
		XRatio:  XRatio(viewWidth, samples),
		YRatio:  yRatio,
		Height:  height,
		Padding: padding,
	}
	if offset {
		p.Baseline = b.Min
	}
	if flat {
		p.Lift = viewHeight / 2
		p.Baseline = b.Min
	}
	return p
}

// Map projects a series. The key is never part of the samples, so the result
// has exactly len(col.Samples) points.
func (p Projection) Map(col model.Column) []model.Point {
	points := make([]model.Point, len(col.Samples))
	for i, v := range col.Samples {
		points[i] = model.Point{
			X: math.Floor(float64(i) * p.XRatio),
			Y: math.Floor(p.Height - p.Padding - p.Lift - (v-p.Baseline)*p.YRatio),
		}
	}
	return points
}
