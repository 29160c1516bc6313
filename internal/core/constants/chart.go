package constants

const (
	// Device pixel ratio between raster pixels and logical pixels
	DPR = 2

	// Main chart geometry (logical pixels)
	ChartWidth   = 600
	ChartHeight  = 200
	ChartPadding = 40

	// Main chart raster geometry
	ChartDPIWidth   = ChartWidth * DPR
	ChartDPIHeight  = ChartHeight * DPR
	ChartViewWidth  = ChartDPIWidth
	ChartViewHeight = ChartDPIHeight - ChartPadding*2

	// Slider thumbnail geometry
	SliderHeight    = 40
	SliderDPIHeight = SliderHeight * DPR

	// Grid partitioning
	RowsCount = 5
	ColsCount = 6

	// Slider window sizing as fractions of the track width
	SliderMinWindowRatio     = 0.05
	SliderDefaultWindowRatio = 0.3

	// Width of the grab zone at each edge of the slider window (logical pixels)
	SliderHandleWidth = 8
)

// Design tokens
const (
	LineWidth     = 4
	GridLineWidth = 1
	AxisLineWidth = 2
	CircleRadius  = 8
	GridColor     = "#bbb"
	LabelColor    = "#96a2aa"
	MarkerFill    = "#fff"
	FontSize      = 20
	FontFamily    = "Helvetica,sans-serif"
	LabelInset    = 5
	LabelBaseline = 10
)
