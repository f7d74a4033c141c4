// tools.go implements the MCP tools for validation.
//
// A rejected value is a normal tool result (IsError set, JSON body), not a
// protocol error: the assistant should read the reason and ask the user again.

package check

import (
	"context"

	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/format"
	"github.com/jpl-au/stockviz/internal/log"
	mcpserver "github.com/jpl-au/stockviz/internal/mcp"
	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

func checkTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("stockviz_check",
			mcp.WithDescription("Validate one visualizer input. symbol: 1-7 uppercase letters; chart: 1 (bar) or 2 (line); series: 1-4 (intraday, daily, weekly, monthly); date: YYYY-MM-DD real calendar date."),
			mcp.WithString("field", mcp.Required(), mcp.Enum(validate.Fields()...), mcp.Description("Input field to validate")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value exactly as the user gave it")),
		),
		Handler: handleCheck,
	}
}

func queryTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("stockviz_query",
			mcp.WithDescription("Validate a complete visualizer query. Omitted symbol, chart and series use the configured defaults. Returns the normalised query or every rejected field."),
			mcp.WithString("symbol", mcp.Description("Ticker symbol")),
			mcp.WithString("chart", mcp.Description("Chart type selector: 1 or 2")),
			mcp.WithString("series", mcp.Description("Time series selector: 1 to 4")),
			mcp.WithString("start", mcp.Description("Start date YYYY-MM-DD; omit when last is given")),
			mcp.WithString("end", mcp.Description("End date YYYY-MM-DD; defaults to today with last")),
			mcp.WithString("last", mcp.Description("Lookback window ending at end instead of start: 30d, 4w, 3m, 1y")),
		),
		Handler: handleQuery,
	}
}

func handleCheck(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, err := req.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError("field is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	cerr := validate.Check(field, value)
	log.Event("mcp:stockviz_check", "check").Field(field).Value(value).Write(cerr)

	res, jerr := mcpserver.JSONResult(format.NewResult(field, value, cerr))
	if jerr == nil && cerr != nil {
		res.IsError = true
	}
	return res, jerr
}

func handleQuery(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := extCtx.Config().QueryDefaults()
	in.Symbol = mcpserver.GetString(req, "symbol", in.Symbol)
	in.Chart = mcpserver.GetString(req, "chart", in.Chart)
	in.Series = mcpserver.GetString(req, "series", in.Series)
	in.Start = mcpserver.GetString(req, "start", "")
	in.End = mcpserver.GetString(req, "end", "")
	if last := mcpserver.GetString(req, "last", ""); last != "" {
		if err := applyLast(&in, last, in.Start != ""); err != nil {
			return mcp.NewToolResultError(err.Error()), nil //nolint:nilerr
		}
	}

	q, err := query.Build(in)
	log.Event("mcp:stockviz_query", "query").Value(in.Symbol).Write(err)

	if err != nil {
		res, jerr := mcpserver.JSONResult(map[string]any{"valid": false, "errors": format.Errors(err)})
		if jerr == nil {
			res.IsError = true
		}
		return res, jerr
	}
	return mcpserver.JSONResult(map[string]any{"valid": true, "query": q})
}
