// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command and the MCP server, where keys
// arrive as dotted strings (e.g., "defaults.chart_type").
//
// Design: Set runs the same validators as query input, so a default that
// would be rejected at the prompt can never be stored.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/stockviz/internal/validate"
	"github.com/rs/zerolog"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"defaults.symbol", "defaults.chart_type", "defaults.time_series",
		"audit.enabled",
		"log.level",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "defaults.symbol":
		return c.Defaults.Symbol, nil
	case "defaults.chart_type":
		return c.Defaults.ChartType, nil
	case "defaults.time_series":
		return c.Defaults.TimeSeries, nil
	case "audit.enabled":
		return strconv.FormatBool(c.AuditEnabled()), nil
	case "log.level":
		if c.Log.Level == "" {
			return zerolog.WarnLevel.String(), nil
		}
		return c.Log.Level, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. An empty value clears the
// string-valued defaults.
func (c *Config) Set(key, value string) error {
	switch key {
	case "defaults.symbol":
		if value != "" {
			if err := validate.Symbol(value); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
		}
		c.Defaults.Symbol = value
	case "defaults.chart_type":
		if value != "" {
			if err := validate.ChartType(value); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
		}
		c.Defaults.ChartType = value
	case "defaults.time_series":
		if value != "" {
			if err := validate.TimeSeries(value); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
		}
		c.Defaults.TimeSeries = value
	case "audit.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: audit.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Audit.Enabled = &b
	case "log.level":
		if _, err := zerolog.ParseLevel(value); err != nil || value == "" {
			return fmt.Errorf("%w: log.level must be one of trace, debug, info, warn, error", ErrInvalidValue)
		}
		c.Log.Level = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		all[k] = v
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "defaults.symbol":
		return c.Defaults.Symbol != ""
	case "defaults.chart_type":
		return c.Defaults.ChartType != ""
	case "defaults.time_series":
		return c.Defaults.TimeSeries != ""
	case "audit.enabled":
		return c.Audit.Enabled != nil
	case "log.level":
		return c.Log.Level != ""
	default:
		return false
	}
}
