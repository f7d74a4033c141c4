// config.go implements the "stockviz config" command for configuration management.
//
// Design: Config follows a cascade model similar to git: local config
// (.stockviz/config.yaml) takes precedence over global (~/.stockviz/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package core

import (
	"fmt"
	"sort"

	"github.com/jpl-au/stockviz/cmd"
	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/config"
	"github.com/jpl-au/stockviz/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  stockviz config                          # show config
  stockviz config defaults.symbol          # show the default symbol
  stockviz config defaults.symbol AAPL     # set it
  stockviz config defaults.symbol ""       # clear it

Keys:
  defaults.symbol        ticker offered when the symbol is left empty
  defaults.chart_type    1 (Bar) or 2 (Line)
  defaults.time_series   1 (Intraday), 2 (Daily), 3 (Weekly), 4 (Monthly)
  audit.enabled          record checks in ~/.stockviz/log (default true)
  log.level              diagnostic level on stderr (default warn)

Configuration locations:
  Global: ~/.stockviz/config.yaml
  Local:  .stockviz/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.stockviz/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}
		log.Event("core:config", "list").Write(nil)

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", cfg.Scope().String()).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": cfg.Scope().String()})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], cfg.Scope())
	}
	return nil
}
