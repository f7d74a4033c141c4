// Package progress reports batch check progress. Output goes to stderr so
// stdout stays clean for the results, and nothing is drawn unless stderr is a
// terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the smallest batch that shows progress.
const minItems = 5

// Progress tracks how many values of a batch have been checked.
type Progress struct {
	w        io.Writer
	label    string
	total    int
	current  int
	rejected int
	isTTY    bool
	width    int
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, progress updates are suppressed.
func New(label string, total int) *Progress {
	return NewWriter(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewWriter creates a progress reporter on w. tty selects in-place updates;
// when false nothing is written.
func NewWriter(w io.Writer, label string, total int, tty bool) *Progress {
	return &Progress{w: w, label: label, total: total, isTTY: tty}
}

// Add records one checked value.
func (p *Progress) Add(valid bool) {
	p.current++
	if !valid {
		p.rejected++
	}
}

// Current returns the number of values recorded so far.
func (p *Progress) Current() int { return p.current }

// Rejected returns the number of recorded values that failed.
func (p *Progress) Rejected() int { return p.rejected }

// Print writes the current progress, overwriting the previous line.
func (p *Progress) Print() {
	if !p.visible() {
		return
	}
	pct := (p.current * 100) / p.total
	line := fmt.Sprintf("%s... %d/%d (%d%%), %d rejected", p.label, p.current, p.total, pct, p.rejected)
	if len(line) > p.width {
		p.width = len(line)
	}
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.visible() || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}

func (p *Progress) visible() bool {
	return p.isTTY && p.total >= minItems
}
