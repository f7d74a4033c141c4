// Package duration parses lookback windows such as "30d" or "6m" for query
// date ranges.
//
// Windows are calendar based, not fixed lengths of time: "1m" before
// 2023-03-31 is 2023-02-28, the same day-of-month clamped to the shorter
// month, rather than 30 days earlier.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalid is returned for a window that does not match N[dwmy].
var ErrInvalid = errors.New("invalid lookback")

var windowRe = regexp.MustCompile(`^([1-9]\d{0,3})([dwmy])$`)

// Window is a calendar lookback: N days, weeks, months or years.
type Window struct {
	N    int
	Unit byte // 'd', 'w', 'm' or 'y'
}

// Parse parses window strings in the format: Nd (days), Nw (weeks), Nm (months), Ny (years).
// Examples: "7d", "4w", "3m", "1y". N is 1 to 9999.
func Parse(s string) (Window, error) {
	m := windowRe.FindStringSubmatch(s)
	if m == nil {
		return Window{}, fmt.Errorf("%w: %q (use 7d, 4w, 3m or 1y)", ErrInvalid, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Window{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return Window{N: n, Unit: m[2][0]}, nil
}

// Start returns the first day of the window ending on end, counting end as
// the last day. A "7d" window ending 2023-01-07 starts 2023-01-01.
func (w Window) Start(end time.Time) time.Time {
	switch w.Unit {
	case 'd':
		return end.AddDate(0, 0, -(w.N - 1))
	case 'w':
		return end.AddDate(0, 0, -(7*w.N - 1))
	case 'm':
		return addMonthsClamped(end, -w.N).AddDate(0, 0, 1)
	case 'y':
		return addMonthsClamped(end, -12*w.N).AddDate(0, 0, 1)
	default:
		return end
	}
}

// String returns the window in its parsed form (e.g., "3m").
func (w Window) String() string {
	return strconv.Itoa(w.N) + string(w.Unit)
}

// addMonthsClamped moves t by months, clamping the day to the target
// month's length instead of rolling over (Mar 31 - 1 month = Feb 28).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}
