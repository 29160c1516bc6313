package viewer

import (
	"errors"

	"github.com/penwyp/go-linechart/internal/core/constants"
)

// Config contains configuration for the view command
type Config struct {
	// Dataset file and the entry to show when it holds a list
	DataFile string
	Index    int

	// Display settings
	Timezone    string
	RefreshRate float64

	// Reload the dataset when the file changes
	Watch bool
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("dataset file is required")
	}
	if c.Index < 0 {
		return errors.New("dataset index must not be negative")
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.RefreshRate == 0 {
		c.RefreshRate = constants.DefaultRefreshRate
	}
	if c.RefreshRate < constants.MinRefreshRate {
		c.RefreshRate = constants.MinRefreshRate
	}
	if c.RefreshRate > constants.MaxRefreshRate {
		c.RefreshRate = constants.MaxRefreshRate
	}
	return nil
}
