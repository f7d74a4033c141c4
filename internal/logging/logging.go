// Package logging configures diagnostic logging for stockviz.
//
// Diagnostics are separate from the audit log in internal/log: they go to
// stderr for a human watching the command, while audit entries are stored
// for later queries. Stdout is left alone because it carries command output
// (and MCP JSON-RPC messages under "stockviz serve").
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level   string    // zerolog level name; empty means warn
	Verbose bool      // forces debug level
	Pretty  bool      // human console output instead of JSON lines
	Out     io.Writer // defaults to os.Stderr
}

// Setup configures the global zerolog logger.
func Setup(cfg Config) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	level := zerolog.WarnLevel
	if cfg.Level != "" {
		if l, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = l
		}
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(out).With().Timestamp().Str("app", "stockviz").Logger()
}
