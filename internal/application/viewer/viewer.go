package viewer

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/penwyp/go-linechart/internal/application/chart"
	"github.com/penwyp/go-linechart/internal/application/event"
	"github.com/penwyp/go-linechart/internal/application/frame"
	"github.com/penwyp/go-linechart/internal/application/slider"
	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/data/dataset"
	"github.com/penwyp/go-linechart/internal/data/input"
	"github.com/penwyp/go-linechart/internal/data/watcher"
	"github.com/penwyp/go-linechart/internal/presentation/render"
	"github.com/penwyp/go-linechart/internal/presentation/terminal"
	"github.com/penwyp/go-linechart/internal/presentation/tooltip"
	"github.com/penwyp/go-linechart/internal/util"
)

var background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

const helpText = "q quit · r redraw · drag the slider window or its edges to zoom"

// Viewer hosts the chart and the slider in a terminal. Every component is
// driven from the frame loop goroutine; Run only forwards input to it.
type Viewer struct {
	config *Config
	loop   *frame.Loop
	screen *terminal.Screen
	layout Layout

	data     *model.Dataset
	document *event.Dispatcher
	chartEl  *event.Dispatcher
	sliderEl *event.Dispatcher

	chartCanvas  *render.Canvas
	sliderCanvas *render.Canvas
	chart        *chart.Chart
	slider       *slider.Slider
	tip          *tooltip.Terminal

	window   model.Window
	hovering bool
	status   string
}

// New loads the dataset and builds the chart and slider. The terminal is
// not touched until Run.
func New(config *Config) (*Viewer, error) {
	return newViewer(config, os.Stdout)
}

func newViewer(config *Config, out io.Writer) (*Viewer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := util.InitializeTimeProvider(config.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}

	ds, err := loadDataset(config)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		config:       config,
		loop:         frame.NewLoop(config.RefreshRate),
		screen:       terminal.NewScreen(out),
		data:         ds,
		document:     event.NewDispatcher(model.Rect{Width: constants.ChartWidth, Height: sliderRect.Top + sliderRect.Height}),
		chartEl:      event.NewDispatcher(chartRect),
		sliderEl:     event.NewDispatcher(sliderRect),
		chartCanvas:  render.NewCanvas(constants.ChartDPIWidth, constants.ChartDPIHeight),
		sliderCanvas: render.NewCanvas(constants.ChartDPIWidth, constants.SliderDPIHeight),
	}
	v.setLayout(ComputeLayout(80, 24))

	v.tip = tooltip.NewTerminal(v.layout.TooltipLayout())
	v.chart = chart.New(v.chartEl, v.chartCanvas, ds, v.tip, v.loop)
	v.slider = slider.New(v.sliderEl, v.document, v.sliderCanvas, ds,
		slider.WithView(slider.ViewFunc(func(w model.Window) { v.window = w })))
	v.slider.Subscribe(v.selectionChanged)

	return v, nil
}

func loadDataset(config *Config) (*model.Dataset, error) {
	ds, err := dataset.Load(config.DataFile, config.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := dataset.Validate(ds); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", config.DataFile, err)
	}
	return ds, nil
}

// Run shows the viewer until ctx is done or the user quits
func (v *Viewer) Run(ctx context.Context) error {
	util.LogInfo("Starting line chart viewer...")

	defer v.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader, err := input.NewReader(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to initialize input: %w", err)
	}
	defer reader.Close()

	var reloads <-chan watcher.Event
	if v.config.Watch {
		fw, err := watcher.NewFileWatcher(v.config.DataFile, constants.ReloadDebounce)
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer fw.Close()
		reloads = fw.Events()
	}

	if err := v.screen.Enter(); err != nil {
		return fmt.Errorf("failed to prepare terminal: %w", err)
	}
	defer v.screen.Exit()

	v.loop.AfterFrame(v.draw)
	v.loop.Post(func() {
		v.resize()
		v.slider.Render()
		v.chart.Init()
		v.draw()
	})

	done := make(chan error, 1)
	go func() { done <- v.loop.Run(ctx) }()

	resizeTicker := time.NewTicker(500 * time.Millisecond)
	defer resizeTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			<-done
			util.LogInfo("Shutting down line chart viewer...")
			return nil

		case ev := <-reader.Events():
			if isQuit(ev) {
				cancel()
				continue
			}
			v.loop.Post(func() { v.handleInput(ev) })

		case ev := <-reloads:
			util.LogInfof("Dataset changed: %s (%s)", filepath.Base(ev.Path), ev.Operation)
			v.loop.Post(v.reload)

		case <-resizeTicker.C:
			v.loop.Post(v.resize)
		}
	}
}

func isQuit(ev input.Event) bool {
	if ev.Type != input.EventKey {
		return false
	}
	switch ev.Key {
	case 'q', 'Q', input.KeyCtrlC, input.KeyEscape:
		return true
	}
	return false
}

// handleInput translates terminal input into pointer events
func (v *Viewer) handleInput(ev input.Event) {
	if ev.Type == input.EventKey {
		if ev.Key == 'r' || ev.Key == 'R' {
			v.redraw()
		}
		return
	}

	m := ev.Mouse
	x, y, region := v.layout.ClientPoint(m.Row, m.Col)
	pointer := event.Pointer{ClientX: x, ClientY: y, PageX: x}

	switch m.Action {
	case input.MouseMove:
		pointer.Kind = event.PointerMove
		v.document.Dispatch(pointer)
		if region == RegionChart {
			v.hovering = true
			v.chartEl.Dispatch(pointer)
		} else if v.hovering {
			v.hovering = false
			v.chartEl.Dispatch(event.Pointer{Kind: event.PointerLeave, ClientX: x, ClientY: y, PageX: x})
		}

	case input.MousePress:
		if m.Button != 0 || region != RegionSlider {
			return
		}
		pointer.Kind = event.PointerDown
		pointer.Target = v.slider.RoleAt(x - sliderRect.Left)
		v.sliderEl.Dispatch(pointer)

	case input.MouseRelease:
		pointer.Kind = event.PointerUp
		v.document.Dispatch(pointer)
	}
}

// selectionChanged narrows the chart to the slider window
func (v *Viewer) selectionChanged(leftPct, rightPct float64) {
	v.status = fmt.Sprintf("%.0f%% - %.0f%%", leftPct, rightPct)
	v.chart.SetData(v.data.Window(leftPct, rightPct))
}

func (v *Viewer) reload() {
	ds, err := loadDataset(v.config)
	if err != nil {
		util.LogWarnf("Failed to reload dataset, keeping the previous one: %v", err)
		v.status = "reload failed, see log"
		v.draw()
		return
	}

	v.data = ds
	v.slider.SetData(ds)
	v.selectionChanged(v.slider.Position())
}

// close destroys the controllers, dropping frames they still have pending
func (v *Viewer) close() {
	v.chart.Destroy()
	v.slider.Destroy()
}

func (v *Viewer) redraw() {
	v.slider.Render()
	v.chart.Paint()
	v.draw()
}

func (v *Viewer) setLayout(l Layout) {
	v.layout = l
	if v.tip != nil {
		v.tip.SetLayout(l.TooltipLayout())
	}
}

// resize recomputes the layout when the terminal size changed
func (v *Viewer) resize() {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if cols == v.layout.Cols && rows == v.layout.Rows {
		return
	}
	util.LogDebugf("Terminal resized to %dx%d", cols, rows)
	v.setLayout(ComputeLayout(cols, rows))
	v.draw()
}

// draw writes the rasters, the tooltip and the chrome to the terminal
func (v *Viewer) draw() {
	l := v.layout
	v.screen.Clear()

	title := fmt.Sprintf("%s%s%s  %s", util.ColorBold, filepath.Base(v.config.DataFile), util.ColorReset, v.status)
	v.screen.Draw(l.TitleRow, l.ChartCol, []string{title})

	v.screen.Draw(l.ChartRow, l.ChartCol, terminal.Blit(v.chartCanvas.Image(), l.ChartCols, l.ChartRows,
		terminal.BlitOptions{Background: background}))

	total := v.slider.Width()
	window := v.window
	v.screen.Draw(l.SliderRow, l.ChartCol, terminal.Blit(v.sliderCanvas.Image(), l.ChartCols, l.SliderRows,
		terminal.BlitOptions{
			Background: background,
			Dim: func(col int) bool {
				x := l.SliderColumnX(col)
				return x < window.Left || x > total-window.Right
			},
		}))

	v.screen.Draw(l.HelpRow, l.ChartCol, []string{util.ColorDim + helpText + util.ColorReset})

	if err := v.tip.Render(v.screen.Writer()); err != nil {
		util.LogDebugf("Failed to render tooltip: %v", err)
	}
	if err := v.screen.Flush(); err != nil {
		util.LogDebugf("Failed to flush screen: %v", err)
	}
}
