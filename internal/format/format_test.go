package format

import (
	"bytes"
	"testing"

	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Check(&buf, NewResult("symbol", "AAPL", nil)))
	assert.Equal(t, "valid symbol: \"AAPL\"\n", buf.String())

	buf.Reset()
	r := NewResult("chart", "3", validate.ChartType("3"))
	assert.False(t, r.Valid)
	require.NoError(t, Check(&buf, r))
	assert.Contains(t, buf.String(), "invalid chart: invalid chart type")
}

func TestQuery(t *testing.T) {
	q, err := query.Build(query.Input{Symbol: "TSLA", Chart: "1", Series: "3", Start: "2023-01-01", End: "2023-01-07"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Query(&buf, q))
	assert.Equal(t, ""+
		"SYMBOL  TSLA\n"+
		"CHART   Bar (1)\n"+
		"SERIES  Weekly (3)\n"+
		"START   2023-01-01\n"+
		"END     2023-01-07\n"+
		"DAYS    7\n", buf.String())
}

func TestQueryErrors(t *testing.T) {
	_, err := query.Build(query.Input{Symbol: "TSLA", Chart: "9", Series: "3", Start: "2023-01-01", End: "2023-13-07"})
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, QueryErrors(&buf, err))
	assert.Contains(t, buf.String(), "chart  invalid chart type")
	assert.Contains(t, buf.String(), "end    invalid date")

	m := Errors(err)
	assert.Len(t, m, 2)
	assert.Contains(t, m["end"], "month out of range")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, 12, 3))
	assert.Equal(t, "12 checked, 3 rejected\n", buf.String())
}
