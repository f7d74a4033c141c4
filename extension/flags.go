// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "max-attempts" -> FlagMaxAttempts).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagBatch       = "batch"       // Read values from stdin
	FlagInteractive = "interactive" // Prompt for missing fields
	FlagLocal       = "local"       // Use local scope (.stockviz/config.yaml)
	FlagQuiet       = "quiet"       // Exit status only, no output

	// String flags

	FlagChart  = "chart"  // Chart type selector
	FlagEnd    = "end"    // End date (YYYY-MM-DD)
	FlagLast   = "last"   // Lookback window ending at --end
	FlagSeries = "series" // Time series selector
	FlagStart  = "start"  // Start date (YYYY-MM-DD)
	FlagSymbol = "symbol" // Ticker symbol

	// Integer flags

	FlagMaxAttempts = "max-attempts" // Prompt retries per field
)
