// Package mcp implements the Model Context Protocol server, exposing stockviz
// validation to LLMs. An assistant collecting query parameters from a user
// can check each answer the same way the CLI does.
package mcp

import (
	"context"
	"errors"

	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// Name is advertised to clients during initialisation.
const Name = "stockviz"

// Serve starts the MCP server over stdio.
//
// Tools come from the registered extensions plus the built-in config tool.
// Diagnostics go to stderr through zerolog; stdout is reserved for MCP
// JSON-RPC messages.
func Serve(extCtx extension.Context, tools []extension.MCPTool) error {
	s := newServer(extCtx, tools)

	log.Info().Str("version", version.Short()).Int("tools", len(tools)+1).Str("transport", "stdio").Msg("stockviz MCP server ready")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("server stopped")
		return nil
	}
	return err
}

// newServer builds the MCP server with every tool registered.
func newServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithToolCapabilities(true),
	)

	h := &handlers{ctx: extCtx}
	s.AddTool(
		mcp.NewTool("stockviz_config_get",
			mcp.WithDescription("Read stockviz configuration, including the default symbol, chart type and time series"),
			mcp.WithString("key", mcp.Description("Config key (omit to list all)")),
		),
		h.configGet,
	)

	for _, t := range tools {
		s.AddTool(t.Tool, bind(extCtx, t.Handler))
	}
	return s
}

// bind adapts an extension handler to the server's handler signature.
func bind(extCtx extension.Context, fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, extCtx, req)
	}
}

// handlers provides the built-in MCP tools with access to shared config.
type handlers struct {
	ctx extension.Context
}
