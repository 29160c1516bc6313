package viewer

import (
	"math"

	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/presentation/tooltip"
)

// Region is the screen area a cell belongs to
type Region int

const (
	RegionNone Region = iota
	RegionChart
	RegionSlider
)

const (
	maxChartCols    = 150
	minChartCols    = 24
	sliderGapRows   = 1
	chromeRows      = 2 // title and help line
	sliderClientGap = 20
)

// Client rectangles of the two surfaces. Client coordinates are logical
// pixels; the slider sits below the chart.
var (
	chartRect  = model.Rect{Width: constants.ChartWidth, Height: constants.ChartHeight}
	sliderRect = model.Rect{
		Top:    constants.ChartHeight + sliderClientGap,
		Width:  constants.ChartWidth,
		Height: constants.SliderHeight,
	}
)

// Layout places the chart and slider on the terminal. Rows and columns are
// 1-based.
type Layout struct {
	Cols int
	Rows int

	TitleRow   int
	ChartRow   int
	ChartCol   int
	ChartCols  int
	ChartRows  int
	SliderRow  int
	SliderRows int
	HelpRow    int
}

// ComputeLayout fits the chart to a terminal of the given size. A cell
// holds two vertically stacked pixels, so the chart keeps the aspect ratio
// of its raster when it spans cols x cols/6 cells.
func ComputeLayout(cols, rows int) Layout {
	chartCols := min(max(cols-2, minChartCols), maxChartCols)
	chartRows, sliderRows := aspectRows(chartCols)

	// shrink until everything fits vertically
	for chartCols > minChartCols && chartRows+sliderRows+sliderGapRows+chromeRows > rows {
		chartCols--
		chartRows, sliderRows = aspectRows(chartCols)
	}

	l := Layout{
		Cols:       cols,
		Rows:       rows,
		TitleRow:   1,
		ChartRow:   2,
		ChartCol:   max(1, (cols-chartCols)/2+1),
		ChartCols:  chartCols,
		ChartRows:  chartRows,
		SliderRows: sliderRows,
	}
	l.SliderRow = l.ChartRow + chartRows + sliderGapRows
	l.HelpRow = l.SliderRow + sliderRows
	return l
}

func aspectRows(cols int) (chartRows, sliderRows int) {
	pixelCols := float64(cols)
	chartRows = max(2, int(math.Round(pixelCols*constants.ChartHeight/constants.ChartWidth/2)))
	sliderRows = max(1, int(math.Round(pixelCols*constants.SliderHeight/constants.ChartWidth/2)))
	return chartRows, sliderRows
}

// CellWidth is the width of a cell in logical pixels
func (l Layout) CellWidth() float64 {
	return constants.ChartWidth / float64(l.ChartCols)
}

func (l Layout) chartCellHeight() float64 {
	return constants.ChartHeight / float64(l.ChartRows)
}

func (l Layout) sliderCellHeight() float64 {
	return constants.SliderHeight / float64(l.SliderRows)
}

// ClientPoint maps the center of a cell to client coordinates. Cells outside
// both surfaces still get an x coordinate so drags can leave the slider.
func (l Layout) ClientPoint(row, col int) (x, y float64, region Region) {
	x = (float64(col-l.ChartCol) + 0.5) * l.CellWidth()
	inside := col >= l.ChartCol && col < l.ChartCol+l.ChartCols

	switch {
	case row >= l.ChartRow && row < l.ChartRow+l.ChartRows:
		y = chartRect.Top + (float64(row-l.ChartRow)+0.5)*l.chartCellHeight()
		if inside {
			region = RegionChart
		}
	case row >= l.SliderRow && row < l.SliderRow+l.SliderRows:
		y = sliderRect.Top + (float64(row-l.SliderRow)+0.5)*l.sliderCellHeight()
		if inside {
			region = RegionSlider
		}
	case row < l.ChartRow:
		y = chartRect.Top - 1
	default:
		y = sliderRect.Top + sliderRect.Height + 1
	}
	return x, y, region
}

// SliderColumnX returns the track-local x coordinate of a slider cell column
func (l Layout) SliderColumnX(col int) float64 {
	return (float64(col) + 0.5) * l.CellWidth()
}

// TooltipLayout anchors tooltip boxes to the chart area
func (l Layout) TooltipLayout() tooltip.Layout {
	return tooltip.Layout{
		OriginRow:  l.ChartRow,
		OriginCol:  l.ChartCol,
		CellWidth:  l.CellWidth(),
		CellHeight: l.chartCellHeight(),
		Rows:       l.Rows,
		Cols:       l.Cols,
	}
}
