// symbol.go implements ticker symbol validation.
//
// Symbols are checked byte by byte rather than with unicode.IsUpper so that
// letters outside A-Z (accented capitals, Cyrillic) are rejected. Exchange
// suffixes such as "BRK.B" are not accepted.

package validate

import "fmt"

// MaxSymbolLen is the longest ticker symbol accepted.
const MaxSymbolLen = 7

// Symbol validates a stock ticker symbol.
//
// Validation rules:
//   - Length between 1 and MaxSymbolLen bytes
//   - Every byte is an uppercase ASCII letter
func Symbol(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidSymbol)
	}
	if len(s) > MaxSymbolLen {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidSymbol, s, MaxSymbolLen)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
			return fmt.Errorf("%w: %q must be uppercase", ErrInvalidSymbol, s)
		default:
			return fmt.Errorf("%w: %q must contain only letters A-Z", ErrInvalidSymbol, s)
		}
	}
	return nil
}

// IsSymbol reports whether s is a valid ticker symbol.
func IsSymbol(s string) bool {
	return Symbol(s) == nil
}
