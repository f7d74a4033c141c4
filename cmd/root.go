/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE loads config, configures diagnostics and opens
// the audit log before any command runs. Bootstrap commands (config, guide,
// version) skip config loading so a broken config file can still be repaired
// with "stockviz config".

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/stockviz/internal/config"
	"github.com/jpl-au/stockviz/internal/log"
	"github.com/jpl-au/stockviz/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stockviz",
	Short: "Validate stock visualizer queries",
	Long: `Checks the inputs of a stock data visualizer: ticker symbol, chart type,
time series and date range. Use "stockviz query" to assemble a full query,
interactively or from flags, and "stockviz check" to test a single value.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		cmdName := topLevelCmdName(cmd)
		cfg := &config.Config{}
		if !noConfigCommands[cmdName] {
			loaded, err := config.Load()
			if err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
		}

		logging.Setup(logging.Config{Level: cfg.Log.Level, Verbose: verbose, Pretty: true})

		if cfg.AuditEnabled() {
			// Best-effort: a missing audit log never blocks validation.
			if err := log.Open(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
			} else if root := config.ProjectRoot(); root != "" {
				// Entries from any subdirectory share the project id.
				log.SetProject(root)
			}
		}

		return initExtensions(cfg)
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "stockviz check symbol AAPL", returns "check".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Registers extensions, executes the command and closes the audit log.
// Exit code 1 indicates an error or a rejected input.
func Execute() {
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()
	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// Rejected marks err as an input rejection that the command has already
// reported. Cobra prints neither the error nor usage; the exit code is 1.
func Rejected(c *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	c.SilenceErrors = true
	c.SilenceUsage = true
	return errors.Join(ErrRejected, err)
}

// ErrRejected wraps every error returned through Rejected.
var ErrRejected = errors.New("input rejected")

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
