// Package core provides the core extension for stockviz.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/stockviz/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the server registers its own config tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
