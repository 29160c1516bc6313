package geometry

import (
	"math"

	"github.com/penwyp/go-linechart/internal/core/model"
)

// Bounds is the value range of all line series
type Bounds struct {
	Min float64
	Max float64
}

// Flat reports whether the range has no height
func (b Bounds) Flat() bool {
	return b.Max == b.Min
}

// ComputeBoundaries scans every line series and returns the global min and max
// sample. The caller guarantees at least one line series.
func ComputeBoundaries(ds *model.Dataset) Bounds {
	b := Bounds{Min: math.MaxFloat64, Max: -math.MaxFloat64}
	for _, col := range ds.Columns {
		if !ds.IsLine(col.Key) {
			continue
		}
		for _, v := range col.Samples {
			if v < b.Min {
				b.Min = v
			}
			if v > b.Max {
				b.Max = v
			}
		}
	}
	return b
}
