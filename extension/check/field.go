// field.go implements "stockviz check <field> <value>".
//
// Each field gets its own subcommand so shell completion lists them and
// "stockviz check date --help" can describe the format. All subcommands share
// runCheck; the field name selects the validator. With --batch the values are
// read from stdin, one per line, and the command fails if any is rejected.

package check

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/stockviz/cmd"
	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/format"
	"github.com/jpl-au/stockviz/internal/log"
	"github.com/jpl-au/stockviz/internal/progress"
	"github.com/jpl-au/stockviz/internal/validate"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Validate a single input value",
		Long: `Validate a single input value. Exits 1 when the value is rejected.

  stockviz check symbol AAPL
  stockviz check chart 2
  stockviz check series 4
  stockviz check date 2024-02-29
  stockviz check symbol --batch < symbols.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runUnknownField,
	}
	c.PersistentFlags().BoolP(extension.FlagQuiet, "q", false, "Exit status only, no output")
	c.PersistentFlags().Bool(extension.FlagBatch, false, "Check one value per line from stdin")

	c.AddCommand(
		newFieldCmd(validate.FieldSymbol, "Validate a ticker symbol (1-7 uppercase letters A-Z)"),
		newFieldCmd(validate.FieldChart, "Validate a chart type selection (1 Bar, 2 Line)"),
		newFieldCmd(validate.FieldSeries, "Validate a time series selection (1 Intraday, 2 Daily, 3 Weekly, 4 Monthly)"),
		newFieldCmd(validate.FieldDate, "Validate a date (YYYY-MM-DD, real calendar day)"),
	)
	return c
}

// runUnknownField handles "stockviz check" with no field, or with a field
// that has no subcommand.
func runUnknownField(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return c.Help()
	}
	err := validate.Check(args[0], "")
	if cmd.JSON() {
		_ = cmd.PrintJSON(map[string]string{"error": err.Error()})
		return cmd.Rejected(c, err)
	}
	return err
}

func newFieldCmd(field, short string) *cobra.Command {
	return &cobra.Command{
		Use:   field + " <value>",
		Short: short,
		Args: func(c *cobra.Command, args []string) error {
			if batch, _ := c.Flags().GetBool(extension.FlagBatch); batch {
				return cobra.NoArgs(c, args)
			}
			return cobra.ExactArgs(1)(c, args)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if batch, _ := c.Flags().GetBool(extension.FlagBatch); batch {
				return runBatch(c, field)
			}
			return runCheck(c, field, args[0])
		},
	}
}

func runCheck(c *cobra.Command, field, value string) error {
	quiet, _ := c.Flags().GetBool(extension.FlagQuiet)

	err := validate.Check(field, value)
	log.Event("check:"+field, "check").Field(field).Value(value).Write(err)

	zlog.Debug().Str("field", field).Str("value", value).Bool("valid", err == nil).AnErr("reason", err).Msg("check")

	r := format.NewResult(field, value, err)
	switch {
	case quiet:
	case cmd.JSON():
		if jerr := cmd.PrintJSON(r); jerr != nil {
			return jerr
		}
	default:
		if ferr := format.Check(cmd.Out(), r); ferr != nil {
			return fmt.Errorf("write result: %w", ferr)
		}
	}
	return cmd.Rejected(c, err)
}

// ErrBatchRejected is returned when at least one batch value fails.
var ErrBatchRejected = errors.New("batch contains invalid values")

// readLines returns the non-blank lines of stdin with line endings removed.
// Other whitespace is kept so it is judged by the validator. Lines have no
// length limit; an over-long value is rejected by its validator.
func readLines() ([]string, error) {
	var lines []string
	r := bufio.NewReader(cmd.In())
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
	}
}

func runBatch(c *cobra.Command, field string) error {
	quiet, _ := c.Flags().GetBool(extension.FlagQuiet)

	values, err := readLines()
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	p := progress.New("checking "+field, len(values))
	results := make([]format.Result, 0, len(values))
	for _, v := range values {
		verr := validate.Check(field, v)
		results = append(results, format.NewResult(field, v, verr))
		p.Add(verr == nil)
		p.Print()
	}
	p.Done()

	var rerr error
	if p.Rejected() > 0 {
		rerr = fmt.Errorf("%w: %d of %d", ErrBatchRejected, p.Rejected(), p.Current())
	}
	log.Event("check:"+field, "batch").Field(field).
		Detail("checked", p.Current()).Detail("rejected", p.Rejected()).Write(rerr)
	zlog.Debug().Str("field", field).Int("checked", p.Current()).Int("rejected", p.Rejected()).Msg("batch")

	switch {
	case quiet:
	case cmd.JSON():
		if jerr := cmd.PrintJSON(map[string]any{
			"results":  results,
			"checked":  p.Current(),
			"rejected": p.Rejected(),
		}); jerr != nil {
			return jerr
		}
	default:
		for _, r := range results {
			if ferr := format.Check(cmd.Out(), r); ferr != nil {
				return fmt.Errorf("write result: %w", ferr)
			}
		}
		if ferr := format.Summary(cmd.Out(), p.Current(), p.Rejected()); ferr != nil {
			return fmt.Errorf("write summary: %w", ferr)
		}
	}
	return cmd.Rejected(c, rerr)
}
