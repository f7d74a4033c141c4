// context.go defines the Context interface for extension access to shared state.
//
// Separated from extension.go to isolate dependency injection concerns.
// Extensions receive Context during Init(), after the root command has loaded
// configuration, rather than reading config themselves at registration time.

package extension

import (
	"github.com/jpl-au/stockviz/internal/config"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Config returns user configuration (query defaults, audit settings).
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{cfg: cfg}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
