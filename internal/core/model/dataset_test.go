package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(n int) *Dataset {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i * 10)
	}
	return &Dataset{
		Columns: []Column{{Key: "y0", Samples: y}, {Key: "x", Samples: x}},
		Types:   map[string]Kind{"x": KindAxis, "y0": KindLine},
		Colors:  map[string]string{"y0": "#3DC23F"},
		Names:   map[string]string{"y0": "Joined"},
	}
}

func TestDatasetAccessors(t *testing.T) {
	ds := sampleDataset(4)

	assert.Equal(t, "x", ds.Axis().Key)
	require.Len(t, ds.Lines(), 1)
	assert.Equal(t, "y0", ds.Lines()[0].Key)
	assert.Equal(t, 4, ds.SampleCount())
	assert.Equal(t, 5, ds.Axis().Len())
	assert.True(t, ds.IsLine("y0"))
	assert.False(t, ds.IsLine("x"))
}

func TestDatasetWindow(t *testing.T) {
	ds := sampleDataset(10)

	tests := []struct {
		name      string
		left      float64
		right     float64
		wantAxis  []float64
		wantFirst float64
	}{
		{"full range", 0, 100, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 0},
		{"default slider window", 70, 100, []float64{7, 8, 9}, 70},
		{"partial samples round outwards", 15, 45, []float64{1, 2, 3, 4}, 10},
		{"narrow window keeps two samples", 50, 51, []float64{5, 6}, 50},
		{"narrow window at the end", 99.5, 100, []float64{8, 9}, 80},
		{"out of range percentages clamp", -20, 140, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ds.Window(tt.left, tt.right)
			assert.Equal(t, tt.wantAxis, w.Axis().Samples)
			assert.Equal(t, tt.wantFirst, w.Lines()[0].Samples[0])
			assert.Equal(t, ds.Names, w.Names)
		})
	}
}

func TestDatasetWindowEmpty(t *testing.T) {
	ds := &Dataset{Types: map[string]Kind{}}
	assert.Same(t, ds, ds.Window(10, 20))
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(109.9, 69.9))
	assert.False(t, r.Contains(110, 30))
	assert.False(t, r.Contains(50, 70))
	assert.False(t, r.Contains(9, 30))
}
