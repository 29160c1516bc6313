package render

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularFont     *truetype.Font
	regularFontErr  error
	regularFontOnce sync.Once
)

func loadRegularFont() (*truetype.Font, error) {
	regularFontOnce.Do(func() {
		regularFont, regularFontErr = truetype.Parse(goregular.TTF)
	})
	return regularFont, regularFontErr
}

type canvasState struct {
	lineWidth float64
	stroke    string
	fill      string
	fontSize  float64
}

// Canvas is a Surface backed by an in-memory RGBA image
type Canvas struct {
	dc    *gg.Context
	state canvasState
	stack []canvasState
	faces map[float64]font.Face
}

// NewCanvas creates a transparent canvas of the given raster size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc: gg.NewContext(width, height),
		state: canvasState{
			lineWidth: 1,
			stroke:    "#000",
			fill:      "#000",
			fontSize:  10,
		},
		faces: make(map[float64]font.Face),
	}
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
}

func (c *Canvas) ClosePath() {
	c.dc.ClosePath()
}

func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// LineTo starts a subpath when the path is empty
func (c *Canvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	c.dc.DrawArc(x, y, radius, startAngle, endAngle)
}

func (c *Canvas) Stroke() {
	c.dc.SetLineWidth(c.state.lineWidth)
	c.dc.SetHexColor(c.state.stroke)
	c.dc.StrokePreserve()
}

func (c *Canvas) Fill() {
	c.dc.SetHexColor(c.state.fill)
	c.dc.FillPreserve()
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) SetLineWidth(width float64) {
	c.state.lineWidth = width
}

func (c *Canvas) SetStrokeStyle(color string) {
	c.state.stroke = color
}

func (c *Canvas) SetFillStyle(color string) {
	c.state.fill = color
}

// SetFont selects the font size. Every family maps to the embedded Go
// Regular face.
func (c *Canvas) SetFont(size float64, family string) {
	c.state.fontSize = size
}

func (c *Canvas) FillText(text string, x, y float64) {
	face, err := c.face(c.state.fontSize)
	if err != nil {
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetHexColor(c.state.fill)
	c.dc.DrawString(text, x, y)
}

// ClearRect resets the pixels of the rectangle to transparent
func (c *Canvas) ClearRect(x, y, width, height float64) {
	img, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
	draw.Draw(img, r.Intersect(img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

// Image returns the backing image
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as a PNG image
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode canvas: %w", err)
	}
	return nil
}

func (c *Canvas) face(size float64) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	f, err := loadRegularFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size})
	c.faces[size] = face
	return face, nil
}
