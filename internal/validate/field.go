// field.go maps field names to their validators.
//
// The CLI check command and the MCP check tool both receive the field as a
// string, so the lookup lives here rather than being duplicated.

package validate

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by Check for a field name with no validator.
var ErrUnknownField = errors.New("unknown field")

// Field names accepted by Check.
const (
	FieldSymbol = "symbol"
	FieldChart  = "chart"
	FieldSeries = "series"
	FieldDate   = "date"
)

var checks = map[string]func(string) error{
	FieldSymbol: Symbol,
	FieldChart:  ChartType,
	FieldSeries: TimeSeries,
	FieldDate:   Date,
}

// Fields returns the field names accepted by Check, in prompt order.
func Fields() []string {
	return []string{FieldSymbol, FieldChart, FieldSeries, FieldDate}
}

// Check validates value as the named field.
func Check(field, value string) error {
	fn, ok := checks[field]
	if !ok {
		return fmt.Errorf("%w: %q (valid: %v)", ErrUnknownField, field, Fields())
	}
	return fn(value)
}
