package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/penwyp/go-linechart/internal/application/viewer"
	"github.com/penwyp/go-linechart/internal/core/constants"
)

var (
	viewWatch       bool
	viewRefreshRate float64
)

var viewCmd = &cobra.Command{
	Use:   "view <dataset.json>",
	Short: "Show the chart interactively in the terminal",
	Long: `Draws the chart and the slider with true-colour half-block cells.

Mouse:
  hover the chart           show the tooltip of the sample under the pointer
  drag the slider window    move the selected range
  drag a window edge        resize the selected range

Keys:
  r                         redraw
  q, Esc, Ctrl+C            quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false,
		"Reload the dataset when the file changes")
	viewCmd.Flags().Float64Var(&viewRefreshRate, "refresh-rate", constants.DefaultRefreshRate,
		fmt.Sprintf("Display refresh rate (%v-%v Hz)", constants.MinRefreshRate, constants.MaxRefreshRate))
}

func runView(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("view needs an interactive terminal, use render instead")
	}

	// the viewer owns the terminal, so logs only go to the file
	if err := initLogging(false); err != nil {
		return err
	}

	config := &viewer.Config{
		DataFile:    expandPath(args[0]),
		Index:       datasetIndex,
		Timezone:    timezone,
		RefreshRate: viewRefreshRate,
		Watch:       viewWatch,
	}

	v, err := viewer.New(config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return v.Run(ctx)
}
