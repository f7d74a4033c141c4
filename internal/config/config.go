// Package config provides reading and writing of stockviz configuration.
// Supports both global (~/.stockviz/config.yaml) and local (.stockviz/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/stockviz/internal/query"
	"github.com/jpl-au/stockviz/internal/validate"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the stockviz directory in the home and working directories.
const Dir = ".stockviz"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.stockviz/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .stockviz/config.yaml
	ScopeLocal
)

// String returns "global" or "local".
func (s Scope) String() string {
	if s == ScopeLocal {
		return "local"
	}
	return "global"
}

// Defaults holds answers offered when a query field is left empty.
type Defaults struct {
	Symbol     string `yaml:"symbol,omitempty"`
	ChartType  string `yaml:"chart_type,omitempty"`
	TimeSeries string `yaml:"time_series,omitempty"`
}

// Audit holds audit log options.
type Audit struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Log holds diagnostic logging options.
type Log struct {
	Level string `yaml:"level,omitempty"`
}

// Config contains configuration for stockviz.
type Config struct {
	Defaults Defaults `yaml:"defaults,omitempty"`
	Audit    Audit    `yaml:"audit,omitempty"`
	Log      Log      `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks every configured value. Unset values are valid.
func (c *Config) Validate() error {
	if v := c.Defaults.Symbol; v != "" {
		if err := validate.Symbol(v); err != nil {
			return fmt.Errorf("%w: defaults.symbol: %w", ErrInvalidValue, err)
		}
	}
	if v := c.Defaults.ChartType; v != "" {
		if err := validate.ChartType(v); err != nil {
			return fmt.Errorf("%w: defaults.chart_type: %w", ErrInvalidValue, err)
		}
	}
	if v := c.Defaults.TimeSeries; v != "" {
		if err := validate.TimeSeries(v); err != nil {
			return fmt.Errorf("%w: defaults.time_series: %w", ErrInvalidValue, err)
		}
	}
	if v := c.Log.Level; v != "" {
		if _, err := zerolog.ParseLevel(v); err != nil {
			return fmt.Errorf("%w: log.level: %q is not a log level", ErrInvalidValue, v)
		}
	}
	return nil
}

// AuditEnabled returns whether audit logging is enabled (defaults to true).
func (c *Config) AuditEnabled() bool {
	if c.Audit.Enabled == nil {
		return true
	}
	return *c.Audit.Enabled
}

// QueryDefaults returns the configured defaults as query input.
func (c *Config) QueryDefaults() query.Input {
	return query.Input{
		Symbol: c.Defaults.Symbol,
		Chart:  c.Defaults.ChartType,
		Series: c.Defaults.TimeSeries,
	}
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// ProjectRoot returns the nearest directory at or above the working directory
// that holds a local .stockviz directory, or "" when there is none. The home
// directory does not count: its .stockviz holds the global config.
func ProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	home, _ := os.UserHomeDir()
	for {
		if dir != home {
			if fi, err := os.Stat(filepath.Join(dir, Dir)); err == nil && fi.IsDir() {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// GlobalPath returns the path to the global (user) config file: ~/.stockviz/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
