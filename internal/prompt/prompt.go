// Package prompt asks for query fields interactively, re-asking until each
// answer validates.
//
// The prompter reads whole lines from its reader, so it works the same for
// a terminal and for piped input. Only the trailing line ending is removed
// from an answer; surrounding spaces are kept and therefore rejected by the
// validators, matching what the user actually typed.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
	"github.com/rs/zerolog/log"
)

// ErrTooManyAttempts is returned when MaxAttempts answers were all rejected.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	// MaxAttempts bounds how many times one field is asked. Zero means no limit.
	MaxAttempts int

	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask writes label, reads one answer and repeats until check accepts it.
//
// A rejected answer is followed by the rejection message. Input ending before
// an accepted answer returns io.ErrUnexpectedEOF. The context is checked
// between attempts; a blocked read is not interrupted.
func (p *Prompter) Ask(ctx context.Context, label string, check func(string) error) (string, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(p.w, "%s: ", label)

		line, err := p.r.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("reading answer: %w", err)
			}
			if line == "" {
				fmt.Fprintln(p.w)
				return "", io.ErrUnexpectedEOF
			}
		}
		answer := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		cerr := check(answer)
		if cerr == nil {
			return answer, nil
		}
		log.Debug().Str("label", label).Str("answer", answer).Int("attempt", attempt).Err(cerr).Msg("answer rejected")
		fmt.Fprintf(p.w, "  %v\n", cerr)

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return "", fmt.Errorf("%w: %s", ErrTooManyAttempts, label)
		}
	}
}

// withDefault wraps check so that an empty answer is replaced by def.
func withDefault(def string, check func(string) error) (func(string) error, *string) {
	var chosen string
	return func(s string) error {
		if s == "" && def != "" {
			s = def
		}
		if err := check(s); err != nil {
			return err
		}
		chosen = s
		return nil
	}, &chosen
}

// field asks for one value, offering def when it is set.
func (p *Prompter) field(ctx context.Context, label, def string, check func(string) error) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	wrapped, chosen := withDefault(def, check)
	if _, err := p.Ask(ctx, label, wrapped); err != nil {
		return "", err
	}
	return *chosen, nil
}

// Query asks for every query field in turn and returns the built query.
//
// Non-empty fields of defaults are offered as the answer for an empty line.
// The date range is checked after both dates are accepted; a reversed range
// re-asks for the end date.
func (p *Prompter) Query(ctx context.Context, defaults query.Input) (query.Query, error) {
	var (
		in  query.Input
		err error
	)

	if in.Symbol, err = p.field(ctx, "Enter the stock symbol", defaults.Symbol, validate.Symbol); err != nil {
		return query.Query{}, err
	}

	p.menu("Chart types", chartMenu())
	if in.Chart, err = p.field(ctx, "Enter the chart type (1, 2)", defaults.Chart, validate.ChartType); err != nil {
		return query.Query{}, err
	}

	p.menu("Time series", seriesMenu())
	if in.Series, err = p.field(ctx, "Enter the time series option (1, 2, 3, 4)", defaults.Series, validate.TimeSeries); err != nil {
		return query.Query{}, err
	}

	if in.Start, err = p.field(ctx, "Enter the start date (YYYY-MM-DD)", defaults.Start, validate.Date); err != nil {
		return query.Query{}, err
	}

	start := in.Start
	endCheck := func(s string) error {
		if err := validate.Date(s); err != nil {
			return err
		}
		if s < start {
			return fmt.Errorf("%w: %s < %s", query.ErrDateOrder, s, start)
		}
		return nil
	}
	if in.End, err = p.field(ctx, "Enter the end date (YYYY-MM-DD)", defaults.End, endCheck); err != nil {
		return query.Query{}, err
	}

	return query.Build(in)
}

func (p *Prompter) menu(title string, items []string) {
	fmt.Fprintf(p.w, "\n%s\n", title)
	fmt.Fprintln(p.w, strings.Repeat("-", len(title)))
	for _, it := range items {
		fmt.Fprintf(p.w, "%s\n", it)
	}
	fmt.Fprintln(p.w)
}

func chartMenu() []string {
	items := make([]string, 0, len(validate.Charts))
	for _, k := range validate.Charts {
		items = append(items, fmt.Sprintf("%s. %s", k.Option(), k))
	}
	return items
}

func seriesMenu() []string {
	items := make([]string, 0, len(validate.AllSeries))
	for _, s := range validate.AllSeries {
		items = append(items, fmt.Sprintf("%s. %s", s.Option(), s))
	}
	return items
}
