package model

// Point is a pixel coordinate on a raster surface
type Point struct {
	X float64
	Y float64
}

// Anchor is the tooltip position in surface-local logical pixels
type Anchor struct {
	Left float64
	Top  float64
}

// Cursor is the pointer hover state of the chart. A nil *Cursor means the
// pointer is not over the surface.
type Cursor struct {
	X       float64 // raster x-position (device pixels)
	Tooltip Anchor
}

// Rect is an element's bounding box in client coordinates
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contains reports whether the client point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// TooltipItem is one row of the tooltip
type TooltipItem struct {
	Color string  `json:"color"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TooltipData is the payload handed to the tooltip collaborator
type TooltipData struct {
	Title string        `json:"title"`
	Items []TooltipItem `json:"items"`
}

// Window is the slider selection expressed as pixel offsets from each edge
// of the slider track.
type Window struct {
	Left  float64
	Right float64
	Width float64
}
