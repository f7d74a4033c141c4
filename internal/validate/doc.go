// Package validate provides input validation for stockviz query fields.
//
// Every rule is a pure function over a single string. Each field has two
// forms: an error-returning check (Symbol, ChartType, TimeSeries, Date) that
// explains a rejection, and a boolean predicate (IsSymbol, IsChartType,
// IsTimeSeries, IsDate) for callers that only need the answer. The
// predicate is always equivalent to the check returning nil.
//
// # Validation Rules
//
// Symbol accepts 1-7 uppercase ASCII letters ("AAPL", "GOOGL").
// ChartType accepts exactly "1" (bar) or "2" (line).
// TimeSeries accepts exactly "1" to "4" (intraday, daily, weekly, monthly).
// Date accepts YYYY-MM-DD naming a real calendar day.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrInvalidSymbol, ErrInvalidDate, etc.). Use errors.Is() for type-safe
// error checking:
//
//	if errors.Is(err, validate.ErrInvalidDate) {
//	    // ask for the date again
//	}
package validate
