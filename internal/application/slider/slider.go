package slider

import (
	"github.com/penwyp/go-linechart/internal/application/event"
	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/geometry"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/presentation/render"
	"github.com/penwyp/go-linechart/internal/util"
)

// View mirrors the selection window onto the host, e.g. by shading the
// masked parts of the track.
type View interface {
	Update(w model.Window)
}

// ViewFunc adapts a function to View
type ViewFunc func(w model.Window)

func (f ViewFunc) Update(w model.Window) { f(w) }

// Option configures a Slider
type Option func(*Slider)

// WithView registers the host view of the selection window
func WithView(v View) Option {
	return func(s *Slider) {
		s.view = v
	}
}

type drag struct {
	role   event.Role
	startX float64
	start  model.Window
	remove func()
}

// Slider draws a thumbnail of the whole dataset and lets the user select a
// window of it by dragging. The selection is published as a pair of
// percentages of the track width.
type Slider struct {
	root     event.Element
	document event.Element
	surface  render.Surface
	data     *model.Dataset
	view     View

	total    float64
	minWidth float64
	window   model.Window

	subscriber func(leftPct, rightPct float64)
	drag       *drag
	removers   []func()
	destroyed  bool
}

// New binds a slider to root. Pointer-down is observed on root; pointer-up
// and the move events of a drag are observed on document so a drag may
// leave the track. The track width is the surface width in logical pixels.
func New(root, document event.Element, surface render.Surface, data *model.Dataset, opts ...Option) *Slider {
	w, _ := surface.Size()
	total := float64(w) / constants.DPR

	s := &Slider{
		root:     root,
		document: document,
		surface:  surface,
		data:     data,
		total:    total,
		minWidth: total * constants.SliderMinWindowRatio,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.removers = append(s.removers,
		root.Listen(event.PointerDown, s.pointerDown),
		document.Listen(event.PointerUp, s.pointerUp),
	)

	s.commit(total-total*constants.SliderDefaultWindowRatio, 0)
	return s
}

// Subscribe replaces the subscriber and replays the current position to it
func (s *Slider) Subscribe(fn func(leftPct, rightPct float64)) {
	s.subscriber = fn
	if fn != nil {
		left, right := s.Position()
		fn(left, right)
	}
}

// Position returns the window edges as percentages of the track width,
// both measured from the left end. A track without width selects
// everything.
func (s *Slider) Position() (leftPct, rightPct float64) {
	if s.total <= 0 {
		return 0, 100
	}
	return s.window.Left * 100 / s.total, (s.total - s.window.Right) * 100 / s.total
}

// Window returns the selection in logical pixels
func (s *Slider) Window() model.Window {
	return s.window
}

// Width returns the track width in logical pixels
func (s *Slider) Width() float64 {
	return s.total
}

// Dragging reports the handle being dragged, RoleNone when idle
func (s *Slider) Dragging() event.Role {
	if s.drag == nil {
		return event.RoleNone
	}
	return s.drag.role
}

// RoleAt returns the part of the slider under the track-local logical x
// coordinate. Hosts without per-element targets use it to fill
// event.Pointer.Target.
func (s *Slider) RoleAt(x float64) event.Role {
	left := s.window.Left
	right := s.total - s.window.Right
	switch {
	case x < left || x > right:
		return event.RoleNone
	case x < left+constants.SliderHandleWidth:
		return event.RoleLeft
	case x > right-constants.SliderHandleWidth:
		return event.RoleRight
	default:
		return event.RoleWindow
	}
}

func (s *Slider) pointerDown(ev event.Pointer) {
	if s.destroyed || ev.Target == event.RoleNone {
		return
	}
	s.endDrag()

	d := &drag{role: ev.Target, startX: ev.PageX, start: s.window}
	d.remove = s.document.Listen(event.PointerMove, s.pointerMove)
	s.drag = d
	util.LogDebugf("Slider drag started: %s at %.1f", d.role, d.startX)
}

func (s *Slider) pointerUp(event.Pointer) {
	if s.drag != nil {
		util.LogDebugf("Slider drag finished: %s", s.drag.role)
	}
	s.endDrag()
}

func (s *Slider) endDrag() {
	if s.drag == nil {
		return
	}
	s.drag.remove()
	s.drag = nil
}

func (s *Slider) pointerMove(ev event.Pointer) {
	d := s.drag
	if d == nil {
		return
	}
	delta := d.startX - ev.PageX
	if delta == 0 {
		return
	}

	start := d.start
	switch d.role {
	case event.RoleWindow:
		left := start.Left - delta
		if left < 0 {
			left = 0
		}
		if left+start.Width > s.total {
			left = s.total - start.Width
		}
		s.commit(left, s.total-start.Width-left)

	case event.RoleLeft:
		left := s.total - start.Right - (start.Width + delta)
		if left < 0 {
			left = 0
		}
		if s.total-left-start.Right < s.minWidth {
			left = s.total - start.Right - s.minWidth
		}
		s.commit(left, start.Right)

	case event.RoleRight:
		right := s.total - start.Left - (start.Width - delta)
		if right < 0 {
			right = 0
		}
		if s.total-start.Left-right < s.minWidth {
			right = s.total - start.Left - s.minWidth
		}
		s.commit(start.Left, right)
	}
}

// commit stores an already clamped window and publishes it
func (s *Slider) commit(left, right float64) {
	s.window = model.Window{Left: left, Right: right, Width: s.total - left - right}
	if s.view != nil {
		s.view.Update(s.window)
	}
	if s.subscriber != nil {
		l, r := s.Position()
		s.subscriber(l, r)
	}
}

// SetData replaces the dataset and redraws the thumbnail. The selection is
// kept.
func (s *Slider) SetData(data *model.Dataset) {
	s.data = data
	s.Render()
}

// Render draws the full-range thumbnail. Values are measured from the data
// minimum so the series fill the track height.
func (s *Slider) Render() {
	w, _ := s.surface.Size()
	vp := render.SliderViewport(float64(w))
	render.Clear(s.surface, vp)

	if s.data == nil {
		return
	}
	lines := s.data.Lines()
	samples := len(s.data.Axis().Samples)
	if len(lines) == 0 || samples == 0 {
		return
	}

	bounds := geometry.ComputeBoundaries(s.data)
	proj := geometry.NewProjection(vp.ViewWidth, vp.ViewHeight, vp.Height, vp.Padding, samples, bounds, true)
	for _, col := range lines {
		render.Line(s.surface, proj.Map(col), s.data.Colors[col.Key])
	}
}

// Destroy ends a running drag and removes every listener. It may be called
// any number of times.
func (s *Slider) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.endDrag()
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
	s.subscriber = nil
}
