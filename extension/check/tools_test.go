package check

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h extension.MCPHandler, cfg *config.Config, args map[string]any) (*mcp.CallToolResult, map[string]any) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	res, err := h(context.Background(), extension.NewContext(cfg), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var body map[string]any
	if json.Unmarshal([]byte(tc.Text), &body) != nil {
		body = map[string]any{"text": tc.Text}
	}
	return res, body
}

func TestHandleCheck(t *testing.T) {
	tests := []struct {
		field, value string
		valid        bool
	}{
		{"symbol", "AAPL", true},
		{"symbol", "aapl", false},
		{"chart", "2", true},
		{"chart", "1.0", false},
		{"series", "4", true},
		{"series", "5", false},
		{"date", "2024-02-29", true},
		{"date", "2023-02-29", false},
	}

	for _, tc := range tests {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			res, body := call(t, handleCheck, nil, map[string]any{"field": tc.field, "value": tc.value})
			assert.Equal(t, !tc.valid, res.IsError)
			assert.Equal(t, tc.valid, body["valid"])
			assert.Equal(t, tc.value, body["value"])
		})
	}
}

func TestHandleCheck_MissingArgs(t *testing.T) {
	res, body := call(t, handleCheck, nil, map[string]any{"field": "symbol"})
	assert.True(t, res.IsError)
	assert.Equal(t, "value is required", body["text"])

	res, body = call(t, handleCheck, nil, map[string]any{"field": "price", "value": "1"})
	assert.True(t, res.IsError)
	assert.Contains(t, body["error"], "unknown field")
}

func TestHandleQuery(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Set("defaults.chart_type", "1"))
	require.NoError(t, cfg.Set("defaults.time_series", "2"))

	t.Run("defaults fill missing fields", func(t *testing.T) {
		res, body := call(t, handleQuery, cfg, map[string]any{
			"symbol": "AMZN", "start": "2023-03-01", "end": "2023-03-31",
		})
		assert.False(t, res.IsError)
		assert.Equal(t, true, body["valid"])

		q := body["query"].(map[string]any)
		assert.Equal(t, "AMZN", q["symbol"])
		assert.Equal(t, "bar", q["chart"])
		assert.Equal(t, "daily", q["series"])
		assert.Equal(t, float64(31), q["days"])
	})

	t.Run("every error reported", func(t *testing.T) {
		res, body := call(t, handleQuery, cfg, map[string]any{
			"symbol": "amzn", "chart": "7", "start": "2023-03-31", "end": "2023-03-01",
		})
		assert.True(t, res.IsError)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "symbol")
		assert.Contains(t, errs, "chart")
		assert.Contains(t, errs["end"], "before start")
		assert.NotContains(t, errs, "series")
	})
}

func TestExtension(t *testing.T) {
	e := &Extension{}
	assert.Equal(t, "check", e.Name())

	var names []string
	for _, c := range e.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"check", "query"}, names)

	var tools []string
	for _, tool := range e.MCPTools() {
		tools = append(tools, tool.Tool.Name)
	}
	assert.Equal(t, []string{"stockviz_check", "stockviz_query"}, tools)
}

func TestHandleQuery_Last(t *testing.T) {
	base := map[string]any{"symbol": "AAPL", "chart": "2", "series": "2"}
	with := func(kv ...string) map[string]any {
		args := make(map[string]any, len(base)+len(kv)/2)
		for k, v := range base {
			args[k] = v
		}
		for i := 0; i+1 < len(kv); i += 2 {
			args[kv[i]] = kv[i+1]
		}
		return args
	}

	res, body := call(t, handleQuery, nil, with("end", "2023-03-31", "last", "1m"))
	assert.False(t, res.IsError)
	q, ok := body["query"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2023-03-01", q["start"])
	assert.Equal(t, float64(31), q["days"])

	res, body = call(t, handleQuery, nil, with("start", "2023-01-01", "last", "7d"))
	assert.True(t, res.IsError)
	assert.Equal(t, ErrStartAndLast.Error(), body["text"])

	res, body = call(t, handleQuery, nil, with("end", "2023-03-31", "last", "3x"))
	assert.True(t, res.IsError)
	assert.Contains(t, body["text"], "invalid lookback")
}
