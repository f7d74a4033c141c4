package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Counts(t *testing.T) {
	p := NewWriter(&bytes.Buffer{}, "checking", 3, false)
	p.Add(true)
	p.Add(false)
	p.Add(true)
	assert.Equal(t, 3, p.Current())
	assert.Equal(t, 1, p.Rejected())
}

func TestProgress_TTY(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf, "checking symbol", 5, true)
	p.Add(true)
	p.Add(false)
	p.Print()
	assert.Equal(t, "\rchecking symbol... 2/5 (40%), 1 rejected", buf.String())

	buf.Reset()
	p.Done()
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r") && strings.HasSuffix(out, "\r"))
	assert.Empty(t, strings.TrimSpace(strings.Trim(out, "\r")))
}

func TestProgress_Silent(t *testing.T) {
	tests := []struct {
		name  string
		total int
		tty   bool
	}{
		{"not a terminal", 10, false},
		{"small batch", minItems - 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewWriter(&buf, "checking", tc.total, tc.tty)
			p.Add(true)
			p.Print()
			p.Done()
			assert.Empty(t, buf.String())
		})
	}
}
