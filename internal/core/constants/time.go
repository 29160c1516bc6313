package constants

import "time"

const (
	// Display refresh rate used by the host frame loop
	DefaultRefreshRate = 30.0
	MinRefreshRate     = 1.0
	MaxRefreshRate     = 120.0

	// Dataset reloads triggered by the file watcher are debounced by this delay
	ReloadDebounce = 150 * time.Millisecond

	// Timestamps in dataset files are milliseconds since the Unix epoch
	TimestampUnit = time.Millisecond
)
