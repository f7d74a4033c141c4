// option.go implements validation of the numbered menu selections.
//
// Chart type and time series are chosen from numbered menus, so the only
// valid inputs are the exact selector digits. Variants that parse to the same
// number ("01", "1.0", " 1") are rejected; the input is matched as text.

package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// ChartKind is a chart rendering mode.
type ChartKind int

const (
	ChartBar ChartKind = iota + 1
	ChartLine
)

// Charts lists chart kinds in menu order.
var Charts = []ChartKind{ChartBar, ChartLine}

// String returns the chart name (e.g., "Bar").
func (k ChartKind) String() string {
	switch k {
	case ChartBar:
		return "Bar"
	case ChartLine:
		return "Line"
	default:
		return fmt.Sprintf("ChartKind(%d)", int(k))
	}
}

// Option returns the menu selector for k ("1" or "2").
func (k ChartKind) Option() string {
	return strconv.Itoa(int(k))
}

// MarshalText encodes k as its lowercase name for JSON output.
func (k ChartKind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// Series is a time series granularity.
type Series int

const (
	SeriesIntraday Series = iota + 1
	SeriesDaily
	SeriesWeekly
	SeriesMonthly
)

// AllSeries lists time series options in menu order.
var AllSeries = []Series{SeriesIntraday, SeriesDaily, SeriesWeekly, SeriesMonthly}

// String returns the series name (e.g., "Daily").
func (s Series) String() string {
	switch s {
	case SeriesIntraday:
		return "Intraday"
	case SeriesDaily:
		return "Daily"
	case SeriesWeekly:
		return "Weekly"
	case SeriesMonthly:
		return "Monthly"
	default:
		return fmt.Sprintf("Series(%d)", int(s))
	}
}

// Option returns the menu selector for s ("1" to "4").
func (s Series) Option() string {
	return strconv.Itoa(int(s))
}

// MarshalText encodes s as its lowercase name for JSON output.
func (s Series) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// ParseChartKind converts a menu selection into a ChartKind.
func ParseChartKind(s string) (ChartKind, error) {
	for _, k := range Charts {
		if s == k.Option() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (choose 1 or 2)", ErrInvalidChartType, s)
}

// ParseSeries converts a menu selection into a Series.
func ParseSeries(s string) (Series, error) {
	for _, o := range AllSeries {
		if s == o.Option() {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (choose 1, 2, 3 or 4)", ErrInvalidTimeSeries, s)
}

// ChartType validates a chart type selection.
func ChartType(s string) error {
	_, err := ParseChartKind(s)
	return err
}

// IsChartType reports whether s is exactly "1" or "2".
func IsChartType(s string) bool {
	return ChartType(s) == nil
}

// TimeSeries validates a time series selection.
func TimeSeries(s string) error {
	_, err := ParseSeries(s)
	return err
}

// IsTimeSeries reports whether s is exactly one of "1", "2", "3" or "4".
func IsTimeSeries(s string) bool {
	return TimeSeries(s) == nil
}
