// Package check provides the validation extension for stockviz.
// It registers commands: check, query; and the MCP tools stockviz_check
// and stockviz_query.
package check

import (
	"github.com/jpl-au/stockviz/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the validation extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Init stores the shared context; query reads its defaults from config.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the validation commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newCheckCmd(),
		e.newQueryCmd(),
	}
}

// MCPTools returns the validation tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		checkTool(),
		queryTool(),
	}
}
