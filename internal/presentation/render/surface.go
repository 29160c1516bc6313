package render

// Surface is a 2D raster drawing context. Its pixel size is the raster size,
// which is DPR times the logical display size of the element hosting it.
//
// Path, style and text operations follow the usual canvas semantics: Stroke
// and Fill keep the current path, BeginPath starts a new one and Save/Restore
// push and pop the style state (line width, colors, font) but not the path.
type Surface interface {
	Size() (width, height int)

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Stroke()
	Fill()

	Save()
	Restore()
	SetLineWidth(width float64)
	SetStrokeStyle(color string)
	SetFillStyle(color string)
	SetFont(size float64, family string)

	FillText(text string, x, y float64)
	ClearRect(x, y, width, height float64)
}
