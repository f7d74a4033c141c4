// Package query assembles validated visualizer queries from raw user input.
//
// A query is the complete set of answers the visualizer needs: which symbol,
// how to draw it, at what granularity, and over which dates. Build checks
// every field and reports all problems together so a user can fix them in
// one pass.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jpl-au/stockviz/internal/validate"
)

// ErrDateOrder is returned when the end date falls before the start date.
var ErrDateOrder = errors.New("end date is before start date")

// Input holds the raw, unvalidated answers as typed by the user.
type Input struct {
	Symbol string `json:"symbol"`
	Chart  string `json:"chart"`
	Series string `json:"series"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Query is a fully validated visualizer request.
type Query struct {
	Symbol string             `json:"symbol"`
	Chart  validate.ChartKind `json:"chart"`
	Series validate.Series    `json:"series"`
	Start  time.Time          `json:"-"`
	End    time.Time          `json:"-"`
}

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// Build validates in and returns the resulting Query.
//
// Every field is checked even after a failure. The returned error joins one
// *FieldError per bad field, so errors.Is works against the validate
// sentinels and ErrDateOrder.
func Build(in Input) (Query, error) {
	var (
		q    Query
		errs []error
		err  error
	)

	if err = validate.Symbol(in.Symbol); err != nil {
		errs = append(errs, &FieldError{Field: "symbol", Err: err})
	} else {
		q.Symbol = in.Symbol
	}

	if q.Chart, err = validate.ParseChartKind(in.Chart); err != nil {
		errs = append(errs, &FieldError{Field: "chart", Err: err})
	}
	if q.Series, err = validate.ParseSeries(in.Series); err != nil {
		errs = append(errs, &FieldError{Field: "series", Err: err})
	}

	startOK, endOK := true, true
	if q.Start, err = validate.ParseDate(in.Start); err != nil {
		errs = append(errs, &FieldError{Field: "start", Err: err})
		startOK = false
	}
	if q.End, err = validate.ParseDate(in.End); err != nil {
		errs = append(errs, &FieldError{Field: "end", Err: err})
		endOK = false
	}
	if startOK && endOK && q.End.Before(q.Start) {
		errs = append(errs, &FieldError{
			Field: "end",
			Err:   fmt.Errorf("%w: %s < %s", ErrDateOrder, in.End, in.Start),
		})
	}

	if len(errs) > 0 {
		return Query{}, errors.Join(errs...)
	}
	return q, nil
}

// Days returns the number of calendar days covered, counting both ends.
// Dates are UTC midnights, so whole days divide evenly.
func (q Query) Days() int {
	return int((q.End.Unix()-q.Start.Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// FieldErrors unpacks the per-field errors from an error returned by Build.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var list []error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		list = j.Unwrap()
	} else {
		list = []error{err}
	}
	var out []*FieldError
	for _, e := range list {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

// MarshalJSON encodes dates as YYYY-MM-DD and includes the day span.
func (q Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbol string             `json:"symbol"`
		Chart  validate.ChartKind `json:"chart"`
		Series validate.Series    `json:"series"`
		Start  string             `json:"start"`
		End    string             `json:"end"`
		Days   int                `json:"days"`
	}{
		Symbol: q.Symbol,
		Chart:  q.Chart,
		Series: q.Series,
		Start:  q.Start.Format(validate.DateLayout),
		End:    q.End.Format(validate.DateLayout),
		Days:   q.Days(),
	})
}

// String renders q on one line for display.
func (q Query) String() string {
	return fmt.Sprintf("%s %s chart, %s series, %s to %s",
		q.Symbol, q.Chart, q.Series,
		q.Start.Format(validate.DateLayout), q.End.Format(validate.DateLayout))
}
