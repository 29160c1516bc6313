package dataset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/util"
)

// rawDataset is the file representation of a dataset. Every column is an
// array whose first element is the column key followed by the samples.
type rawDataset struct {
	Columns [][]any           `json:"columns"`
	Types   map[string]string `json:"types"`
	Names   map[string]string `json:"names"`
	Colors  map[string]string `json:"colors"`
}

// Load reads a dataset file. The file holds either a single dataset object
// or an array of them, in which case index selects one.
func Load(path string, index int) (*model.Dataset, error) {
	util.LogDebugf("Loading dataset: %s [%d]", path, index)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	ds, err := Parse(data, index)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	util.LogDebugf("Loaded dataset %s: %d columns, %d samples", path, len(ds.Columns), ds.SampleCount())
	return ds, nil
}

// Parse decodes a dataset document
func Parse(data []byte, index int) (*model.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty dataset document")
	}

	var raw rawDataset
	if trimmed[0] == '[' {
		var list []rawDataset
		if err := sonic.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("invalid dataset list: %w", err)
		}
		if index < 0 || index >= len(list) {
			return nil, fmt.Errorf("dataset index %d out of range [0, %d)", index, len(list))
		}
		raw = list[index]
	} else {
		if index != 0 {
			return nil, fmt.Errorf("dataset index %d out of range [0, 1)", index)
		}
		if err := sonic.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("invalid dataset: %w", err)
		}
	}

	return raw.toModel()
}

func (r rawDataset) toModel() (*model.Dataset, error) {
	ds := &model.Dataset{
		Columns: make([]model.Column, 0, len(r.Columns)),
		Types:   make(map[string]model.Kind, len(r.Types)),
		Colors:  r.Colors,
		Names:   r.Names,
	}
	if ds.Colors == nil {
		ds.Colors = map[string]string{}
	}
	if ds.Names == nil {
		ds.Names = map[string]string{}
	}
	for key, kind := range r.Types {
		ds.Types[key] = model.Kind(kind)
	}

	for i, raw := range r.Columns {
		if len(raw) == 0 {
			return nil, fmt.Errorf("column %d is empty", i)
		}
		key, ok := raw[0].(string)
		if !ok {
			return nil, fmt.Errorf("column %d: key must be a string, got %v", i, raw[0])
		}

		samples := make([]float64, len(raw)-1)
		for j, v := range raw[1:] {
			f, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("column %s: sample %d is not a number: %v", key, j, v)
			}
			samples[j] = f
		}
		ds.Columns = append(ds.Columns, model.Column{Key: key, Samples: samples})
	}

	return ds, nil
}
