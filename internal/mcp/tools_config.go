// tools_config.go implements the read-only config tool.
//
// Config is exposed read-only: an assistant may use the configured defaults
// when a user leaves a field blank, but changing them stays a CLI action.

package mcp

import (
	"context"

	"github.com/jpl-au/stockviz/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles stockviz_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.ctx.Config()

	key := GetString(req, "key", "")
	if key == "" {
		log.Event("mcp:stockviz_config_get", "list").Write(nil)
		return JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)
	log.Event("mcp:stockviz_config_get", "get").Detail("key", key).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return JSONResult(map[string]string{key: v})
}
