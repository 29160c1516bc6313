package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-linechart/internal/data/dataset"
	"github.com/penwyp/go-linechart/internal/presentation/formatter"
	"github.com/penwyp/go-linechart/internal/util"
)

var (
	exportLeft   float64
	exportRight  float64
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <dataset.json>",
	Short: "Print the samples of the selected window",
	Long: `Prints one row per sample of the window selected with --left and --right,
the same values the chart tooltip shows for each date.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Float64Var(&exportLeft, "left", 0,
		"Left edge of the window in percent")
	exportCmd.Flags().Float64Var(&exportRight, "right", 100,
		"Right edge of the window in percent")
	exportCmd.Flags().StringVarP(&exportFormat, "output", "o", "table",
		"Output format (table, json, csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := initLogging(true); err != nil {
		return err
	}
	if err := util.InitializeTimeProvider(timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}
	if err := validateWindow(exportLeft, exportRight); err != nil {
		return err
	}

	f, err := formatter.New(exportFormat)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(args[0], datasetIndex)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := dataset.Validate(ds); err != nil {
		return fmt.Errorf("invalid dataset %s: %w", args[0], err)
	}

	records := formatter.Records(ds.Window(exportLeft, exportRight))
	util.LogDebugf("Exporting %d samples of %s", len(records), args[0])
	return f.Format(cmd.OutOrStdout(), records)
}

func validateWindow(left, right float64) error {
	if left < 0 || right > 100 || left >= right {
		return fmt.Errorf("invalid window [%v, %v]: need 0 <= left < right <= 100", left, right)
	}
	return nil
}
