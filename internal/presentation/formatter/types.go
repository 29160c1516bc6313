package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-linechart/internal/core/geometry"
	"github.com/penwyp/go-linechart/internal/core/model"
)

// Record is one sample of a dataset with the same content a tooltip shows
// for it.
type Record struct {
	Timestamp int64               `json:"timestamp"`
	Date      string              `json:"date"`
	Values    []model.TooltipItem `json:"values"`
}

// Formatter writes records to w
type Formatter interface {
	Format(w io.Writer, records []Record) error
}

// New returns the formatter registered for the given output format
func New(format string) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("invalid output format %q: must be one of table, json, csv", format)
	}
}

// Records flattens the line columns of ds into one record per sample
func Records(ds *model.Dataset) []Record {
	axis := ds.Axis()
	lines := ds.Lines()

	records := make([]Record, len(axis.Samples))
	for i, ts := range axis.Samples {
		values := make([]model.TooltipItem, 0, len(lines))
		for _, line := range lines {
			if i >= len(line.Samples) {
				continue
			}
			values = append(values, model.TooltipItem{
				Color: ds.Colors[line.Key],
				Name:  ds.Names[line.Key],
				Value: line.Samples[i],
			})
		}
		records[i] = Record{
			Timestamp: int64(ts),
			Date:      geometry.ToDate(ts),
			Values:    values,
		}
	}
	return records
}

// seriesNames returns the column headers of the value series
func seriesNames(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	names := make([]string, len(records[0].Values))
	for i, v := range records[0].Values {
		names[i] = v.Name
	}
	return names
}

func formatValue(v float64) string {
	return fmt.Sprintf("%v", v)
}
