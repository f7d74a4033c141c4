package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "# stockviz Guide")

	date, err := Get("date")
	require.NoError(t, err)
	assert.Contains(t, date, "YYYY-MM-DD")

	_, err = Get("nonexistent")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"chart", "date", "query", "series", "symbol"}, names)
}
