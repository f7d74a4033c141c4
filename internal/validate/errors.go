// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. Each error represents one
// input field; the validation functions wrap them with fmt.Errorf to say
// what exactly was wrong with the value.

package validate

import "errors"

var (
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidChartType  = errors.New("invalid chart type")
	ErrInvalidTimeSeries = errors.New("invalid time series option")
	ErrInvalidDate       = errors.New("invalid date")
)
