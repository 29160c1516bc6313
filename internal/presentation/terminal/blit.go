package terminal

import (
	"image"
	"image/color"
	"strings"

	"github.com/penwyp/go-linechart/internal/util"
)

// HalfBlock is drawn with the upper pixel as foreground and the lower
// pixel as background, giving two square-ish pixels per cell.
const HalfBlock = "▀"

// BlitOptions controls how a raster is converted to cells
type BlitOptions struct {
	// Background is composited under translucent pixels
	Background color.RGBA
	// Dim reports whether a cell column is drawn at reduced brightness
	Dim func(col int) bool
}

// Blit downsamples img to cols x rows cells and returns one string per row.
// Every row ends with a color reset.
func Blit(img image.Image, cols, rows int, opts BlitOptions) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	b := img.Bounds()
	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		var lastFg, lastBg color.RGBA
		first := true

		for col := 0; col < cols; col++ {
			x0 := b.Min.X + col*b.Dx()/cols
			x1 := b.Min.X + (col+1)*b.Dx()/cols
			top := average(img, x0, x1, b.Min.Y+(2*row)*b.Dy()/(2*rows), b.Min.Y+(2*row+1)*b.Dy()/(2*rows), opts.Background)
			bottom := average(img, x0, x1, b.Min.Y+(2*row+1)*b.Dy()/(2*rows), b.Min.Y+(2*row+2)*b.Dy()/(2*rows), opts.Background)
			if opts.Dim != nil && opts.Dim(col) {
				top, bottom = dim(top), dim(bottom)
			}

			if first || top != lastFg {
				sb.WriteString(util.Foreground(top.R, top.G, top.B))
			}
			if first || bottom != lastBg {
				sb.WriteString(util.Background(bottom.R, bottom.G, bottom.B))
			}
			sb.WriteString(HalfBlock)
			lastFg, lastBg, first = top, bottom, false
		}
		sb.WriteString(util.ColorReset)
		lines[row] = sb.String()
	}
	return lines
}

// average composites the mean color of the pixel block over bg. Empty
// blocks take the color of their top-left pixel.
func average(img image.Image, x0, x1, y0, y1 int, bg color.RGBA) color.RGBA {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, b, a, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
			a += uint64(pa)
			n++
		}
	}

	// premultiplied 16-bit channels
	r, g, b, a = r/n, g/n, b/n, a/n
	inv := 0xffff - a
	return color.RGBA{
		R: uint8((r + uint64(bg.R)*0x101*inv/0xffff) >> 8),
		G: uint8((g + uint64(bg.G)*0x101*inv/0xffff) >> 8),
		B: uint8((b + uint64(bg.B)*0x101*inv/0xffff) >> 8),
		A: 0xff,
	}
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
