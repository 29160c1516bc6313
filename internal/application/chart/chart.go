package chart

import (
	"time"

	"github.com/penwyp/go-linechart/internal/application/event"
	"github.com/penwyp/go-linechart/internal/application/frame"
	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/geometry"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/presentation/render"
	"github.com/penwyp/go-linechart/internal/presentation/tooltip"
	"github.com/penwyp/go-linechart/internal/util"
)

// Option configures a Chart
type Option func(*Chart)

// WithOffsetBaseline measures values from the data minimum instead of zero
func WithOffsetBaseline() Option {
	return func(c *Chart) {
		c.offset = true
	}
}

// Chart draws the main line chart and drives the tooltip from pointer
// movement. It is not safe for concurrent use: event handlers and frame
// callbacks must run on the host's event loop.
type Chart struct {
	el      event.Element
	surface render.Surface
	data    *model.Dataset
	tip     tooltip.Tooltip
	frames  frame.Scheduler
	offset  bool

	cursor    *model.Cursor
	pending   frame.ID
	removers  []func()
	destroyed bool
}

// New binds a chart to el. Pointer listeners are registered immediately;
// nothing is drawn until Init or the first pointer event.
func New(el event.Element, surface render.Surface, data *model.Dataset, tip tooltip.Tooltip, frames frame.Scheduler, opts ...Option) *Chart {
	if tip == nil {
		tip = tooltip.Nop{}
	}
	c := &Chart{
		el:      el,
		surface: surface,
		data:    data,
		tip:     tip,
		frames:  frames,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.removers = append(c.removers,
		el.Listen(event.PointerMove, c.pointerMove),
		el.Listen(event.PointerLeave, c.pointerLeave),
	)
	return c
}

// Init paints the first frame synchronously
func (c *Chart) Init() {
	c.Paint()
}

// Cursor returns the current hover state, nil when idle
func (c *Chart) Cursor() *model.Cursor {
	return c.cursor
}

// Data returns the dataset currently drawn
func (c *Chart) Data() *model.Dataset {
	return c.data
}

// SetCursor stores the hover state and schedules a repaint
func (c *Chart) SetCursor(cursor *model.Cursor) {
	c.cursor = cursor
	c.schedule()
}

// SetData replaces the dataset, e.g. with the window selected on the
// slider, and schedules a repaint
func (c *Chart) SetData(data *model.Dataset) {
	c.data = data
	c.schedule()
}

func (c *Chart) pointerMove(ev event.Pointer) {
	rect := c.el.Rect()
	left := ev.ClientX - rect.Left
	top := ev.ClientY - rect.Top
	c.SetCursor(&model.Cursor{
		X:       left * constants.DPR,
		Tooltip: model.Anchor{Left: left, Top: top},
	})
}

func (c *Chart) pointerLeave(event.Pointer) {
	c.SetCursor(nil)
	c.tip.Hide()
}

// schedule requests a frame unless one is already pending
func (c *Chart) schedule() {
	if c.destroyed || c.pending != 0 {
		return
	}
	c.pending = c.frames.Request(c.onFrame)
}

func (c *Chart) onFrame(time.Time) {
	c.pending = 0
	if c.destroyed {
		return
	}
	c.Paint()
}

// viewport derives the drawable area from the surface size
func (c *Chart) viewport() render.Viewport {
	w, h := c.surface.Size()
	return render.Viewport{
		Width:      float64(w),
		Height:     float64(h),
		ViewWidth:  float64(w),
		ViewHeight: float64(h - constants.ChartPadding*2),
		Padding:    constants.ChartPadding,
	}
}

// Paint redraws the whole chart for the current data and cursor
func (c *Chart) Paint() {
	vp := c.viewport()
	render.Clear(c.surface, vp)

	ds := c.data
	if ds == nil {
		return
	}
	lines := ds.Lines()
	timestamps := ds.Axis().Samples
	if len(lines) == 0 || len(timestamps) == 0 {
		return
	}

	bounds := geometry.ComputeBoundaries(ds)
	proj := geometry.NewProjection(vp.ViewWidth, vp.ViewHeight, vp.Height, vp.Padding, len(timestamps), bounds, c.offset)

	render.YAxis(c.surface, vp, bounds)
	if hit := render.XAxis(c.surface, vp, timestamps, proj.XRatio, c.cursor); hit >= 0 {
		c.tip.Show(c.cursor.Tooltip, tooltipData(ds, lines, hit))
	}

	for _, col := range lines {
		color := ds.Colors[col.Key]
		points := proj.Map(col)
		render.Line(c.surface, points, color)

		for _, p := range points {
			if geometry.IsOver(c.cursor, p.X, len(points), vp.Width) {
				render.Circle(c.surface, p, color, constants.CircleRadius)
				break
			}
		}
	}
}

// Destroy cancels a pending repaint and removes the pointer listeners. It
// may be called any number of times.
func (c *Chart) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	if c.pending != 0 {
		c.frames.Cancel(c.pending)
		c.pending = 0
	}
	for _, remove := range c.removers {
		remove()
	}
	c.removers = nil
	util.LogDebug("Chart destroyed")
}

func tooltipData(ds *model.Dataset, lines []model.Column, index int) model.TooltipData {
	items := make([]model.TooltipItem, 0, len(lines))
	for _, col := range lines {
		if index >= len(col.Samples) {
			continue
		}
		items = append(items, model.TooltipItem{
			Color: ds.Colors[col.Key],
			Name:  ds.Names[col.Key],
			Value: col.Samples[index],
		})
	}
	return model.TooltipData{
		Title: geometry.ToDate(ds.Axis().Samples[index]),
		Items: items,
	}
}
