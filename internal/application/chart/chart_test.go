package chart

import (
	"testing"

	"github.com/penwyp/go-linechart/internal/application/event"
	"github.com/penwyp/go-linechart/internal/application/frame"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/testing/fakes"
	"github.com/penwyp/go-linechart/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 86400000

type harness struct {
	el      *event.Dispatcher
	surface *fakes.Surface
	tip     *fakes.Tooltip
	frames  *frame.Manual
	chart   *Chart
}

func newHarness(t *testing.T, ds *model.Dataset, opts ...Option) *harness {
	t.Helper()
	require.NoError(t, util.InitializeTimeProvider("UTC"))
	t.Cleanup(func() { _ = util.InitializeTimeProvider("Local") })

	h := &harness{
		el:      event.NewDispatcher(model.Rect{Width: 600, Height: 200}),
		surface: fakes.NewSurface(1200, 400),
		tip:     &fakes.Tooltip{},
		frames:  frame.NewManual(),
	}
	h.chart = New(h.el, h.surface, ds, h.tip, h.frames, opts...)
	return h
}

func (h *harness) move(x, y float64) {
	h.el.Dispatch(event.Pointer{Kind: event.PointerMove, ClientX: x, ClientY: y, PageX: x})
}

func joinedDataset() *model.Dataset {
	start := 1542412800000.0
	return &model.Dataset{
		Columns: []model.Column{
			{Key: "x", Samples: []float64{start, start + day, start + 2*day, start + 3*day}},
			{Key: "y0", Samples: []float64{10, 20, 15, 5}},
		},
		Types:  map[string]model.Kind{"x": model.KindAxis, "y0": model.KindLine},
		Colors: map[string]string{"y0": "#3DC23F"},
		Names:  map[string]string{"y0": "Joined"},
	}
}

// linePoints returns the vertices of the polyline stroked with color
func linePoints(s *fakes.Surface, color string) []model.Point {
	var points []model.Point
	for _, op := range s.Ops {
		switch {
		case op.Name == "BeginPath":
			points = nil
		case op.Name == "LineTo":
			points = append(points, model.Point{X: op.Args[0], Y: op.Args[1]})
		case op.Name == "Stroke" && op.Color == color:
			return points
		}
	}
	return nil
}

func TestHoverShowsTooltipAndMarker(t *testing.T) {
	h := newHarness(t, joinedDataset())

	// sample 2 sits at raster x 800, logical x 400
	h.move(400, 50)
	assert.Empty(t, h.surface.Ops, "repaint must wait for the next frame")

	assert.Equal(t, 1, h.frames.Flush())

	arcs := h.surface.Find("Arc")
	require.Len(t, arcs, 1)
	assert.Equal(t, 800.0, arcs[0].Args[0])

	call, ok := h.tip.Last()
	require.True(t, ok)
	assert.Equal(t, model.Anchor{Left: 400, Top: 50}, call.Anchor)
	assert.Equal(t, "Nov 19", call.Data.Title)
	assert.Equal(t, []model.TooltipItem{{Color: "#3DC23F", Name: "Joined", Value: 15}}, call.Data.Items)

	cursor := h.chart.Cursor()
	require.NotNil(t, cursor)
	assert.Equal(t, 800.0, cursor.X)
}

func TestCursorRelativeToElement(t *testing.T) {
	h := newHarness(t, joinedDataset())
	h.el.SetRect(model.Rect{Left: 100, Top: 30, Width: 600, Height: 200})

	h.move(300, 80)

	cursor := h.chart.Cursor()
	require.NotNil(t, cursor)
	assert.Equal(t, 400.0, cursor.X)
	assert.Equal(t, model.Anchor{Left: 200, Top: 50}, cursor.Tooltip)
}

func TestRepaintsAreCoalesced(t *testing.T) {
	h := newHarness(t, joinedDataset())

	h.move(10, 10)
	h.move(20, 10)
	h.move(400, 10)
	assert.Equal(t, 1, h.frames.Pending())

	h.frames.Flush()
	assert.Len(t, h.surface.Find("ClearRect"), 1)
	assert.Len(t, h.tip.Shows, 1)
	assert.Equal(t, 800.0, h.chart.Cursor().X)

	h.move(410, 10)
	assert.Equal(t, 1, h.frames.Pending())
}

func TestPointerLeaveHidesTooltip(t *testing.T) {
	h := newHarness(t, joinedDataset())

	h.move(400, 50)
	h.frames.Flush()
	h.surface.Reset()

	h.el.Dispatch(event.Pointer{Kind: event.PointerLeave})
	assert.Nil(t, h.chart.Cursor())
	assert.Equal(t, 1, h.tip.Hides)

	h.frames.Flush()
	assert.Empty(t, h.surface.Find("Arc"))
	assert.Len(t, h.tip.Shows, 1)
}

func TestMissDrawsNoMarker(t *testing.T) {
	h := newHarness(t, joinedDataset())

	// halfway between two samples is outside every hit window
	h.move(100, 50)
	h.frames.Flush()

	assert.Empty(t, h.surface.Find("Arc"))
	assert.Empty(t, h.tip.Shows)
}

func TestInitPaintsAxesAndLines(t *testing.T) {
	h := newHarness(t, joinedDataset())
	h.chart.Init()

	assert.Equal(t, 0, h.frames.Pending())
	assert.True(t, h.surface.HasText("17"))
	assert.True(t, h.surface.HasText("5"))
	assert.True(t, h.surface.HasText("Nov 18"))

	points := linePoints(h.surface, "#3DC23F")
	require.Len(t, points, 4)
	assert.Equal(t, []float64{0, 400, 800, 1200}, []float64{points[0].X, points[1].X, points[2].X, points[3].X})
	// 360 - 5 * 320/15
	assert.Equal(t, 253.0, points[3].Y)
}

func TestOffsetBaseline(t *testing.T) {
	h := newHarness(t, joinedDataset(), WithOffsetBaseline())
	h.chart.Init()

	points := linePoints(h.surface, "#3DC23F")
	require.Len(t, points, 4)
	assert.Equal(t, 360.0, points[3].Y)
	assert.Equal(t, 40.0, points[1].Y)
}

func TestPaintWithoutSamples(t *testing.T) {
	ds := &model.Dataset{
		Columns: []model.Column{{Key: "x"}, {Key: "y0"}},
		Types:   map[string]model.Kind{"x": model.KindAxis, "y0": model.KindLine},
	}
	h := newHarness(t, ds)
	h.chart.Init()

	assert.Len(t, h.surface.Ops, 1)
	assert.Len(t, h.surface.Find("ClearRect"), 1)
}

func TestSetDataRepaints(t *testing.T) {
	h := newHarness(t, joinedDataset())
	h.chart.Init()
	h.surface.Reset()

	window := joinedDataset().Window(50, 100)
	h.chart.SetData(window)
	assert.Same(t, window, h.chart.Data())
	require.Equal(t, 1, h.frames.Flush())

	points := linePoints(h.surface, "#3DC23F")
	assert.Len(t, points, 2)
}

func TestDestroy(t *testing.T) {
	h := newHarness(t, joinedDataset())

	h.move(400, 50)
	require.Equal(t, 1, h.frames.Pending())

	h.chart.Destroy()
	assert.Equal(t, 0, h.frames.Pending())
	assert.Equal(t, 0, h.el.ListenerCount(event.PointerMove))
	assert.Equal(t, 0, h.el.ListenerCount(event.PointerLeave))

	h.chart.Destroy()
	h.move(400, 50)
	assert.Equal(t, 0, h.frames.Pending())
	assert.Empty(t, h.surface.Ops)
}
