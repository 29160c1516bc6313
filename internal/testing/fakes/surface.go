package fakes

import "slices"

// Op is one recorded drawing call
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color string  // stroke or fill style in effect for Stroke, Fill and FillText
	Width float64 // line width in effect for Stroke
}

type surfaceState struct {
	lineWidth float64
	stroke    string
	fill      string
}

// Surface records every call made on it. It implements render.Surface.
type Surface struct {
	Width  int
	Height int
	Ops    []Op

	state surfaceState
	stack []surfaceState
}

// NewSurface creates a recording surface of the given raster size
func NewSurface(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		state:  surfaceState{lineWidth: 1, stroke: "#000", fill: "#000"},
	}
}

func (s *Surface) record(name string, args ...float64) {
	s.Ops = append(s.Ops, Op{Name: name, Args: args})
}

func (s *Surface) Size() (int, int)        { return s.Width, s.Height }
func (s *Surface) BeginPath()              { s.record("BeginPath") }
func (s *Surface) ClosePath()              { s.record("ClosePath") }
func (s *Surface) MoveTo(x, y float64)     { s.record("MoveTo", x, y) }
func (s *Surface) LineTo(x, y float64)     { s.record("LineTo", x, y) }
func (s *Surface) SetLineWidth(w float64)  { s.state.lineWidth = w }
func (s *Surface) SetStrokeStyle(c string) { s.state.stroke = c }
func (s *Surface) SetFillStyle(c string)   { s.state.fill = c }
func (s *Surface) SetFont(float64, string) {}
func (s *Surface) Save()                   { s.stack = append(s.stack, s.state) }

func (s *Surface) Arc(x, y, radius, start, end float64) {
	s.record("Arc", x, y, radius, start, end)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Stroke() {
	s.Ops = append(s.Ops, Op{Name: "Stroke", Color: s.state.stroke, Width: s.state.lineWidth})
}

func (s *Surface) Fill() {
	s.Ops = append(s.Ops, Op{Name: "Fill", Color: s.state.fill})
}

func (s *Surface) FillText(text string, x, y float64) {
	s.Ops = append(s.Ops, Op{Name: "FillText", Args: []float64{x, y}, Text: text, Color: s.state.fill})
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.record("ClearRect", x, y, w, h)
}

// Reset drops the recorded calls
func (s *Surface) Reset() {
	s.Ops = nil
}

// Find returns the recorded calls with the given name
func (s *Surface) Find(name string) []Op {
	var ops []Op
	for _, op := range s.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns the strings drawn with FillText in order
func (s *Surface) Texts() []string {
	var texts []string
	for _, op := range s.Find("FillText") {
		texts = append(texts, op.Text)
	}
	return texts
}

// HasText reports whether text was drawn
func (s *Surface) HasText(text string) bool {
	return slices.Contains(s.Texts(), text)
}
