package formatter

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Columns: []model.Column{
			{Key: "x", Samples: []float64{1542412800000, 1542499200000}},
			{Key: "y0", Samples: []float64{37, 1200}},
			{Key: "y1", Samples: []float64{22.5, 8}},
		},
		Types:  map[string]model.Kind{"x": model.KindAxis, "y0": model.KindLine, "y1": model.KindLine},
		Names:  map[string]string{"y0": "Joined", "y1": "Left"},
		Colors: map[string]string{"y0": "#3DC23F", "y1": "#F34C44"},
	}
}

func testRecords(t *testing.T) []Record {
	t.Helper()
	require.NoError(t, util.InitializeTimeProvider("UTC"))
	return Records(testDataset())
}

func TestRecords(t *testing.T) {
	records := testRecords(t)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1542412800000), records[0].Timestamp)
	assert.Equal(t, "Nov 17", records[0].Date)
	assert.Equal(t, "Nov 18", records[1].Date)
	assert.Equal(t, []model.TooltipItem{
		{Color: "#3DC23F", Name: "Joined", Value: 1200},
		{Color: "#F34C44", Name: "Left", Value: 8},
	}, records[1].Values)
}

func TestNew(t *testing.T) {
	for _, format := range []string{"table", "json", "csv"} {
		f, err := New(format)
		require.NoError(t, err, format)
		assert.NotNil(t, f)
	}

	_, err := New("xml")
	assert.Error(t, err)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter().Format(&buf, testRecords(t)))

	expected := "Timestamp,Date,Joined,Left\n" +
		"1542412800000,Nov 17,37,22.5\n" +
		"1542499200000,Nov 18,1200,8\n"
	assert.Equal(t, expected, buf.String())
}

func TestJSONFormatter(t *testing.T) {
	records := testRecords(t)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, records))

	var decoded []Record
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, records, decoded)
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().Format(&buf, testRecords(t)))

	expected := "" +
		"┌────────┬────────┬────────┐\n" +
		"│ Date   │ Joined │   Left │\n" +
		"├────────┼────────┼────────┤\n" +
		"│ Nov 17 │     37 │   22.5 │\n" +
		"│ Nov 18 │   1200 │      8 │\n" +
		"└────────┴────────┴────────┘\n"
	assert.Equal(t, expected, buf.String())
}
