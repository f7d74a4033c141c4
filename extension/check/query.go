// query.go implements "stockviz query", which assembles a full visualizer query.
//
// Values come from flags, then from configured defaults. With --interactive,
// or when no flag is given and stdin is a terminal, every field is asked for
// in turn and re-asked until it validates. --last fills the start date from a
// lookback window ending at --end (today when --end is not given).

package check

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jpl-au/stockviz/cmd"
	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/duration"
	"github.com/jpl-au/stockviz/internal/format"
	"github.com/jpl-au/stockviz/internal/log"
	"github.com/jpl-au/stockviz/internal/prompt"
	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var inputFlags = []string{
	extension.FlagSymbol, extension.FlagChart, extension.FlagSeries,
	extension.FlagStart, extension.FlagEnd, extension.FlagLast,
}

// ErrStartAndLast is returned when both --start and --last are given.
var ErrStartAndLast = errors.New("use --start or --last, not both")

func (e *Extension) newQueryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "query",
		Short: "Validate a complete visualizer query",
		Long: `Validate a complete visualizer query and print it.

  stockviz query --symbol AAPL --chart 2 --series 2 --start 2023-01-01 --end 2023-12-31
  stockviz query --symbol AAPL --chart 1 --series 2 --last 3m
  stockviz query --interactive

Symbol, chart and series fall back to the configured defaults
(stockviz config defaults.symbol ...). All rejected fields are reported
together. The end date may not be before the start date.`,
		Args: cobra.NoArgs,
		RunE: e.runQuery,
	}
	c.Flags().String(extension.FlagSymbol, "", "Ticker symbol (e.g., AAPL)")
	c.Flags().String(extension.FlagChart, "", "Chart type: 1 Bar, 2 Line")
	c.Flags().String(extension.FlagSeries, "", "Time series: 1 Intraday, 2 Daily, 3 Weekly, 4 Monthly")
	c.Flags().String(extension.FlagStart, "", "Start date (YYYY-MM-DD)")
	c.Flags().String(extension.FlagEnd, "", "End date (YYYY-MM-DD)")
	c.Flags().String(extension.FlagLast, "", "Lookback window ending at --end: 30d, 4w, 3m, 1y")
	c.Flags().BoolP(extension.FlagInteractive, "i", false, "Prompt for each field")
	c.Flags().Int(extension.FlagMaxAttempts, 0, "Give up after this many rejected answers per field (0 = no limit)")
	return c
}

// defaults merges configured defaults with explicit flags; flags win.
func (e *Extension) defaults(c *cobra.Command) (query.Input, error) {
	var in query.Input
	if e.ctx != nil {
		in = e.ctx.Config().QueryDefaults()
	}
	set := func(dst *string, flag string) {
		if c.Flags().Changed(flag) {
			*dst, _ = c.Flags().GetString(flag)
		}
	}
	set(&in.Symbol, extension.FlagSymbol)
	set(&in.Chart, extension.FlagChart)
	set(&in.Series, extension.FlagSeries)
	set(&in.Start, extension.FlagStart)
	set(&in.End, extension.FlagEnd)

	if !c.Flags().Changed(extension.FlagLast) {
		return in, nil
	}
	last, _ := c.Flags().GetString(extension.FlagLast)
	err := applyLast(&in, last, c.Flags().Changed(extension.FlagStart))
	return in, err
}

// applyLast sets in.Start from a lookback window ending at in.End, or today
// when in.End is empty.
func applyLast(in *query.Input, last string, startGiven bool) error {
	if startGiven {
		return ErrStartAndLast
	}
	w, err := duration.Parse(last)
	if err != nil {
		return err
	}
	if in.End == "" {
		in.End = time.Now().Format(validate.DateLayout)
	}
	// An invalid end date is reported by Build; the start stays empty.
	if end, err := validate.ParseDate(in.End); err == nil {
		in.Start = w.Start(end).Format(validate.DateLayout)
	}
	return nil
}

// interactive reports whether fields should be prompted for.
func interactive(c *cobra.Command) bool {
	if on, _ := c.Flags().GetBool(extension.FlagInteractive); on {
		return true
	}
	for _, f := range inputFlags {
		if c.Flags().Changed(f) {
			return false
		}
	}
	f, ok := cmd.In().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (e *Extension) runQuery(c *cobra.Command, _ []string) error {
	in, err := e.defaults(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	asked := interactive(c)

	var q query.Query
	if asked {
		// Keep stdout clean for the JSON document.
		var w io.Writer = cmd.Out()
		if cmd.JSON() {
			w = os.Stderr
		}
		p := prompt.New(cmd.In(), w)
		p.MaxAttempts, _ = c.Flags().GetInt(extension.FlagMaxAttempts)
		q, err = p.Query(c.Context(), in)
		if err == nil {
			fmt.Fprintln(w)
		}
	} else {
		q, err = query.Build(in)
	}

	l := log.Event("query:build", "query").Value(in.Symbol).Detail("interactive", asked)
	if err == nil {
		l.Detail("days", q.Days())
	}
	l.Write(err)
	zlog.Debug().Bool("interactive", asked).Interface("input", in).AnErr("error", err).Msg("query")

	if err != nil {
		fes := query.FieldErrors(err)
		if len(fes) == 0 {
			// Prompt failures (EOF, too many attempts) are not field errors.
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = fmt.Errorf("input ended before the query was complete: %w", err)
			}
			return cmd.PrintJSONError(err)
		}
		if cmd.JSON() {
			_ = cmd.PrintJSON(map[string]any{"valid": false, "errors": format.Errors(err)})
		} else {
			_ = format.QueryErrors(cmd.Out(), err)
		}
		return cmd.Rejected(c, err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"valid": true, "query": q})
	}
	return format.Query(cmd.Out(), q)
}
