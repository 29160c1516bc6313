package geometry

import (
	"math"

	"github.com/penwyp/go-linechart/internal/core/model"
)

// IsOver reports whether the cursor is horizontally over the sample drawn at
// x. Each of the length samples owns a segment of widthPx/length pixels.
// Callers iterating samples stop at the first match.
func IsOver(cursor *model.Cursor, x float64, length int, widthPx float64) bool {
	if cursor == nil || length <= 0 {
		return false
	}
	segmentWidth := widthPx / float64(length)
	return math.Abs(x-cursor.X) < segmentWidth/2
}
