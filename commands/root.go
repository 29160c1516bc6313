package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-linechart/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Dataset selection
	datasetIndex int

	// Display related
	timezone string

	rootCmd = &cobra.Command{
		Use:   "go-linechart",
		Short: "Time series line chart with a zoom slider",
		Long: `go-linechart draws multi-series time-value line charts from JSON datasets.

A dataset file holds one dataset object, or an array of them selected with --index:

  {"columns": [["x", 1542412800000, ...], ["y0", 37, ...]],
   "types":   {"x": "x", "y0": "line"},
   "names":   {"y0": "Joined"},
   "colors":  {"y0": "#3DC23F"}}

Examples:
  go-linechart view data.json                         # Interactive chart in the terminal
  go-linechart view data.json --watch                 # Reload when the file changes
  go-linechart render data.json -o out                # Write chart.png and slider.png
  go-linechart render data.json --cursor 300 --json   # Print the tooltip at x=300 as JSON`,
		SilenceUsage: true,
	}
)

const defaultLogFile = "~/.go-linechart/logs/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(util.FormatText),
		"Log format (text, json)")
	rootCmd.PersistentFlags().IntVar(&datasetIndex, "index", 0,
		"Dataset to use when the file holds a list")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone of the date labels (e.g., Asia/Shanghai, UTC)")
}

func Execute() error {
	return rootCmd.Execute()
}

// initLogging installs the global logger. Debug mode also logs to stderr
// unless a command owns the terminal.
func initLogging(console bool) error {
	level := "info"
	if debug {
		level = "debug"
	}

	format := util.LogFormat(logFormat)
	if format != util.FormatText && format != util.FormatJSON {
		return fmt.Errorf("invalid log format %q: must be either 'text' or 'json'", logFormat)
	}

	path := expandPath(logFile)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	return util.InitLogger(util.LoggerConfig{
		Level:   level,
		File:    path,
		Console: debug && console,
		Format:  format,
	})
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
