// serve.go implements the "stockviz serve" command for MCP server operation.
//
// Separated from extension.go because serve blocks until the client closes
// stdin, and because it is the one command whose stdout belongs to a
// protocol rather than to the user.

package core

import (
	"github.com/jpl-au/stockviz/cmd"
	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools:
  stockviz_check       validate one input value
  stockviz_query       validate a complete query
  stockviz_config_get  read configured defaults`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.ExtContext(), extension.Tools())
}
