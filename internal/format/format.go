// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// validation while this package handles presentation: aligned field
// listings for queries and one-line verdicts for single checks.
package format

import (
	"fmt"
	"io"

	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
)

// Result is the JSON shape of a single field check.
type Result struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewResult builds a Result from a check outcome.
func NewResult(field, value string, err error) Result {
	r := Result{Field: field, Value: value, Valid: err == nil}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Check prints a single check verdict.
func Check(w io.Writer, r Result) error {
	if r.Valid {
		_, err := fmt.Fprintf(w, "valid %s: %q\n", r.Field, r.Value)
		return err
	}
	_, err := fmt.Fprintf(w, "invalid %s: %s\n", r.Field, r.Error)
	return err
}

// Query prints a validated query as aligned fields.
func Query(w io.Writer, q query.Query) error {
	rows := [][2]string{
		{"SYMBOL", q.Symbol},
		{"CHART", fmt.Sprintf("%s (%s)", q.Chart, q.Chart.Option())},
		{"SERIES", fmt.Sprintf("%s (%s)", q.Series, q.Series.Option())},
		{"START", q.Start.Format(validate.DateLayout)},
		{"END", q.End.Format(validate.DateLayout)},
		{"DAYS", fmt.Sprintf("%d", q.Days())},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}

// QueryErrors prints one line per rejected query field.
func QueryErrors(w io.Writer, err error) error {
	fes := query.FieldErrors(err)
	if len(fes) == 0 {
		_, werr := fmt.Fprintln(w, err)
		return werr
	}

	width := 0
	for _, fe := range fes {
		if len(fe.Field) > width {
			width = len(fe.Field)
		}
	}
	for _, fe := range fes {
		if _, werr := fmt.Fprintf(w, "%-*s  %v\n", width, fe.Field, fe.Err); werr != nil {
			return werr
		}
	}
	return nil
}

// Errors converts query field errors into a JSON-friendly map.
func Errors(err error) map[string]string {
	out := make(map[string]string)
	for _, fe := range query.FieldErrors(err) {
		out[fe.Field] = fe.Err.Error()
	}
	return out
}

// Summary prints the totals line of a batch check.
func Summary(w io.Writer, checked, rejected int) error {
	_, err := fmt.Fprintf(w, "%d checked, %d rejected\n", checked, rejected)
	return err
}
