package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
)

// Series describes one generated value column. Sample i has the value
// Base + Step*(i % Period), or Base + Step*i when Period is zero.
type Series struct {
	Name   string
	Color  string
	Base   float64
	Step   float64
	Period int
}

func (s Series) value(i int) float64 {
	if s.Period > 0 {
		i %= s.Period
	}
	return s.Base + s.Step*float64(i)
}

// Document describes one dataset with daily samples
type Document struct {
	Start   time.Time
	Samples int
	Series  []Series
}

// DatasetGenerator writes dataset files for tests
type DatasetGenerator struct {
	baseDir string
}

// NewDatasetGenerator creates a generator writing below baseDir
func NewDatasetGenerator(baseDir string) *DatasetGenerator {
	return &DatasetGenerator{
		baseDir: baseDir,
	}
}

// Write stores the documents as filename and returns its path. A single
// document is written as an object, several as a list.
func (g *DatasetGenerator) Write(filename string, docs ...Document) (string, error) {
	if len(docs) == 0 {
		return "", fmt.Errorf("no documents for %s", filename)
	}

	var payload any
	if len(docs) == 1 {
		payload = encodeDocument(docs[0])
	} else {
		list := make([]map[string]any, len(docs))
		for i, doc := range docs {
			list[i] = encodeDocument(doc)
		}
		payload = list
	}

	data, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", filename, err)
	}

	path := filepath.Join(g.baseDir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// GetBaseDir returns the directory files are written to
func (g *DatasetGenerator) GetBaseDir() string {
	return g.baseDir
}

func encodeDocument(doc Document) map[string]any {
	axis := make([]any, 0, doc.Samples+1)
	axis = append(axis, "x")
	day := int64(24 * time.Hour / time.Millisecond)
	for i := 0; i < doc.Samples; i++ {
		axis = append(axis, doc.Start.UnixMilli()+int64(i)*day)
	}

	columns := [][]any{axis}
	types := map[string]string{"x": "x"}
	names := map[string]string{}
	colors := map[string]string{}

	for n, s := range doc.Series {
		key := fmt.Sprintf("y%d", n)
		col := make([]any, 0, doc.Samples+1)
		col = append(col, key)
		for i := 0; i < doc.Samples; i++ {
			col = append(col, s.value(i))
		}
		columns = append(columns, col)
		types[key] = "line"
		names[key] = s.Name
		colors[key] = s.Color
	}

	return map[string]any{
		"columns": columns,
		"types":   types,
		"names":   names,
		"colors":  colors,
	}
}
