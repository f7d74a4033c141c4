package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_RetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("aapl\nAAPL123\nAAPL\n"), &out)

	got, err := p.Ask(context.Background(), "Symbol", validate.Symbol)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got)

	assert.Equal(t, 3, strings.Count(out.String(), "Symbol: "))
	assert.Contains(t, out.String(), "must be uppercase")
	assert.Contains(t, out.String(), "only letters")
}

func TestAsk_CRLF(t *testing.T) {
	p := New(strings.NewReader("2023-01-01\r\n"), io.Discard)

	got, err := p.Ask(context.Background(), "Date", validate.Date)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", got)
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("2"), io.Discard)

	got, err := p.Ask(context.Background(), "Chart", validate.ChartType)
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestAsk_EOF(t *testing.T) {
	p := New(strings.NewReader("5\n"), io.Discard)

	_, err := p.Ask(context.Background(), "Series", validate.TimeSeries)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestAsk_MaxAttempts(t *testing.T) {
	p := New(strings.NewReader("0\n3\n1\n"), io.Discard)
	p.MaxAttempts = 2

	_, err := p.Ask(context.Background(), "Chart", validate.ChartType)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestAsk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(strings.NewReader("AAPL\n"), io.Discard)
	_, err := p.Ask(ctx, "Symbol", validate.Symbol)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuery(t *testing.T) {
	input := strings.Join([]string{
		"MSFT",
		"0", "1",
		"4",
		"2023-02-30", "2023-02-01",
		"2023-01-15", "2023-03-01",
	}, "\n") + "\n"

	var out bytes.Buffer
	q, err := New(strings.NewReader(input), &out).Query(context.Background(), query.Input{})
	require.NoError(t, err)

	assert.Equal(t, "MSFT", q.Symbol)
	assert.Equal(t, validate.ChartBar, q.Chart)
	assert.Equal(t, validate.SeriesMonthly, q.Series)
	assert.Equal(t, 29, q.Days())

	assert.Contains(t, out.String(), "1. Bar")
	assert.Contains(t, out.String(), "4. Monthly")
	assert.Contains(t, out.String(), "day out of range")
	assert.Contains(t, out.String(), "end date is before start date")
}

func TestQuery_Defaults(t *testing.T) {
	defaults := query.Input{Symbol: "IBM", Chart: "2", Series: "2"}

	var out bytes.Buffer
	q, err := New(strings.NewReader("\n\n3\n2024-02-01\n2024-02-29\n"), &out).Query(context.Background(), defaults)
	require.NoError(t, err)

	assert.Equal(t, "IBM", q.Symbol)
	assert.Equal(t, validate.ChartLine, q.Chart)
	assert.Equal(t, validate.SeriesWeekly, q.Series)
	assert.Contains(t, out.String(), "Enter the stock symbol [IBM]: ")
}

func TestQuery_EmptyWithoutDefault(t *testing.T) {
	p := New(strings.NewReader("\n"), io.Discard)

	_, err := p.Query(context.Background(), query.Input{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
