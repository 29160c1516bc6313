package dataset

import (
	"errors"
	"fmt"

	"github.com/penwyp/go-linechart/internal/core/model"
)

var (
	ErrNoAxis         = errors.New("dataset must have exactly one axis column")
	ErrNoLines        = errors.New("dataset has no line columns")
	ErrLengthMismatch = errors.New("line column length differs from axis")
	ErrUnknownType    = errors.New("unknown column type")
)

// Validate checks the preconditions the chart and slider rely on. The
// controllers never validate their input, so hosts call this once after
// loading.
func Validate(ds *model.Dataset) error {
	if ds == nil {
		return ErrNoAxis
	}

	var axis *model.Column
	lines := 0
	for i := range ds.Columns {
		col := &ds.Columns[i]
		switch ds.Types[col.Key] {
		case model.KindLine:
			lines++
		case model.KindAxis:
			if axis != nil {
				return fmt.Errorf("%w: %q and %q", ErrNoAxis, axis.Key, col.Key)
			}
			axis = col
		default:
			return fmt.Errorf("%w %q for column %q", ErrUnknownType, ds.Types[col.Key], col.Key)
		}
	}

	if axis == nil {
		return ErrNoAxis
	}
	if lines == 0 {
		return ErrNoLines
	}

	for _, col := range ds.Lines() {
		if len(col.Samples) != len(axis.Samples) {
			return fmt.Errorf("%w: %q has %d samples, axis has %d",
				ErrLengthMismatch, col.Key, len(col.Samples), len(axis.Samples))
		}
	}
	return nil
}
