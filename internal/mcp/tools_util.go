// tools_util.go provides helper functions for MCP tool parameter extraction
// and result encoding.
//
// Design: Parameter extraction is permissive (return default on error).
// LLMs frequently omit optional parameters; a missing optional value should
// fall back to a default rather than fail the call.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetString extracts a string parameter from the MCP request, returning def
// if the parameter is missing or not a string.
func GetString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// JSONResult encodes v as the text content of a tool result.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
