package model

import "math"

// Kind identifies how a column is rendered
type Kind string

const (
	KindLine Kind = "line"
	KindAxis Kind = "x"
)

// Column is one named series. Key is the series identifier that the dataset
// files store as the first element of the column array.
type Column struct {
	Key     string
	Samples []float64
}

// Len returns the length of the column including its key element
func (c Column) Len() int {
	return len(c.Samples) + 1
}

// Dataset is the read-only input of the chart and slider controllers.
//
// Preconditions (not checked by the core): exactly one column has a non-line
// kind, every line column has as many samples as the axis column and the
// axis samples are non-decreasing timestamps in milliseconds.
type Dataset struct {
	Columns []Column
	Types   map[string]Kind
	Colors  map[string]string
	Names   map[string]string
}

// IsLine reports whether the column with the given key is a value series
func (d *Dataset) IsLine(key string) bool {
	return d.Types[key] == KindLine
}

// Lines returns the value series in dataset order
func (d *Dataset) Lines() []Column {
	lines := make([]Column, 0, len(d.Columns))
	for _, col := range d.Columns {
		if d.IsLine(col.Key) {
			lines = append(lines, col)
		}
	}
	return lines
}

// Axis returns the first non-line column, the shared time axis
func (d *Dataset) Axis() Column {
	for _, col := range d.Columns {
		if !d.IsLine(col.Key) {
			return col
		}
	}
	return Column{}
}

// SampleCount returns the number of samples of the axis column
func (d *Dataset) SampleCount() int {
	return len(d.Axis().Samples)
}

// Window returns a dataset restricted to the sample range selected by a pair
// of percentages as published by the slider. The window always keeps at
// least two samples so the result can still be drawn as a line. Style maps
// are shared with the receiver.
func (d *Dataset) Window(leftPct, rightPct float64) *Dataset {
	n := d.SampleCount()
	if n == 0 {
		return d
	}

	from := int(math.Floor(float64(n) * clampPercent(leftPct) / 100))
	to := int(math.Ceil(float64(n) * clampPercent(rightPct) / 100))
	if to > n {
		to = n
	}
	if to-from < 2 {
		to = from + 2
		if to > n {
			to = n
			from = max(0, n-2)
		}
	}

	columns := make([]Column, len(d.Columns))
	for i, col := range d.Columns {
		end := min(to, len(col.Samples))
		start := min(from, end)
		columns[i] = Column{Key: col.Key, Samples: col.Samples[start:end]}
	}

	return &Dataset{
		Columns: columns,
		Types:   d.Types,
		Colors:  d.Colors,
		Names:   d.Names,
	}
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
