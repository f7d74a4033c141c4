// date.go implements calendar date validation.
//
// time.Parse with the "2006-01-02" layout already requires a four digit year,
// two digit month and day, and rejects days past the end of the month
// (including 29 February outside leap years). It never rolls an invalid date
// over into the next month, unlike time.Date. Year 0000 parses but is not a
// calendar year, so it is rejected separately.

package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted date format (YYYY-MM-DD).
const DateLayout = time.DateOnly

// ParseDate parses s as a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q is not in YYYY-MM-DD format", ErrInvalidDate, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %s", ErrInvalidDate, s, reason(err))
	}
	// The calendar starts at year 1.
	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("%w: %q: year out of range", ErrInvalidDate, s)
	}
	return t, nil
}

// reason shortens a time.ParseError to the part that helps a user.
func reason(err error) string {
	var pe *time.ParseError
	if errors.As(err, &pe) && pe.Message != "" {
		// Range errors carry a leading ": ".
		return strings.TrimPrefix(pe.Message, ": ")
	}
	return "not in YYYY-MM-DD format"
}

// Date validates a YYYY-MM-DD date string.
func Date(s string) error {
	_, err := ParseDate(s)
	return err
}

// IsDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	return Date(s) == nil
}
