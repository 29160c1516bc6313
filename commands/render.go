package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/penwyp/go-linechart/internal/application/chart"
	"github.com/penwyp/go-linechart/internal/application/event"
	"github.com/penwyp/go-linechart/internal/application/frame"
	"github.com/penwyp/go-linechart/internal/application/slider"
	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/penwyp/go-linechart/internal/data/dataset"
	"github.com/penwyp/go-linechart/internal/presentation/render"
	"github.com/penwyp/go-linechart/internal/util"
)

var (
	renderOutDir  string
	renderCursorX float64
	renderCursorY float64
	renderLeft    float64
	renderRight   float64
	renderJSON    bool
	renderOffset  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <dataset.json>",
	Short: "Render the chart and the slider to PNG files",
	Long: `Renders the chart restricted to the selected window and the full-range slider
thumbnail to chart.png and slider.png. With --cursor the pointer is placed at the
given logical x coordinate of the chart and the tooltip content is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutDir, "out-dir", "o", ".",
		"Directory for chart.png and slider.png")
	renderCmd.Flags().Float64Var(&renderCursorX, "cursor", -1,
		"Logical x coordinate of the simulated pointer (negative = none)")
	renderCmd.Flags().Float64Var(&renderCursorY, "cursor-y", constants.ChartHeight/2,
		"Logical y coordinate of the simulated pointer")
	renderCmd.Flags().Float64Var(&renderLeft, "left", 0,
		"Left edge of the window in percent")
	renderCmd.Flags().Float64Var(&renderRight, "right", 100,
		"Right edge of the window in percent")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false,
		"Print the tooltip as JSON")
	renderCmd.Flags().BoolVar(&renderOffset, "offset", false,
		"Measure chart values from the data minimum instead of zero")
}

// tooltipCapture keeps the last tooltip shown by the chart
type tooltipCapture struct {
	data   *model.TooltipData
	anchor model.Anchor
}

func (c *tooltipCapture) Show(anchor model.Anchor, data model.TooltipData) {
	c.anchor = anchor
	c.data = &data
}

func (c *tooltipCapture) Hide() {
	c.data = nil
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := initLogging(true); err != nil {
		return err
	}
	if err := util.InitializeTimeProvider(timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}
	if err := validateWindow(renderLeft, renderRight); err != nil {
		return err
	}

	ds, err := dataset.Load(args[0], datasetIndex)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := dataset.Validate(ds); err != nil {
		return fmt.Errorf("invalid dataset %s: %w", args[0], err)
	}

	outDir := expandPath(renderOutDir)
	if err := ensureDir(outDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	frames := frame.NewManual()
	tip := &tooltipCapture{}

	chartEl := event.NewDispatcher(model.Rect{Width: constants.ChartWidth, Height: constants.ChartHeight})
	chartCanvas := render.NewCanvas(constants.ChartDPIWidth, constants.ChartDPIHeight)
	var opts []chart.Option
	if renderOffset {
		opts = append(opts, chart.WithOffsetBaseline())
	}
	c := chart.New(chartEl, chartCanvas, ds.Window(renderLeft, renderRight), tip, frames, opts...)
	defer c.Destroy()
	c.Init()

	if renderCursorX >= 0 {
		chartEl.Dispatch(event.Pointer{
			Kind:    event.PointerMove,
			ClientX: renderCursorX,
			ClientY: renderCursorY,
			PageX:   renderCursorX,
		})
		frames.Flush()
	}

	sliderEl := event.NewDispatcher(model.Rect{Width: constants.ChartWidth, Height: constants.SliderHeight})
	sliderCanvas := render.NewCanvas(constants.ChartDPIWidth, constants.SliderDPIHeight)
	s := slider.New(sliderEl, sliderEl, sliderCanvas, ds)
	defer s.Destroy()
	s.Render()

	if err := writePNG(filepath.Join(outDir, "chart.png"), chartCanvas); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(outDir, "slider.png"), sliderCanvas); err != nil {
		return err
	}
	util.LogInfof("Rendered %s to %s", args[0], outDir)

	if renderCursorX >= 0 {
		return printTooltip(cmd.OutOrStdout(), tip.data, renderJSON)
	}
	return nil
}

func writePNG(path string, canvas *render.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := canvas.EncodePNG(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func printTooltip(w io.Writer, data *model.TooltipData, asJSON bool) error {
	if asJSON {
		out := []byte("null")
		if data != nil {
			var err error
			if out, err = sonic.Marshal(data); err != nil {
				return fmt.Errorf("failed to encode tooltip: %w", err)
			}
		}
		_, err := fmt.Fprintln(w, string(out))
		return err
	}

	if data == nil {
		_, err := fmt.Fprintln(w, "no sample under the cursor")
		return err
	}
	fmt.Fprintln(w, data.Title)
	for _, item := range data.Items {
		fmt.Fprintf(w, "  %s\t%v\n", item.Name, item.Value)
	}
	return nil
}
