/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern lets extensions declare
// commands before config has been loaded. The Context is created once and
// shared across all extensions.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/stockviz/extension"
	"github.com/jpl-au/stockviz/internal/config"
)

// noConfigCommands lists commands that run without loading config.
// config must work when the file is broken; guide and version never read it.
var noConfigCommands = map[string]bool{
	"config":  true,
	"guide":   true,
	"version": true,
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the shared Context and injects it into extensions.
func initExtensions(cfg *config.Config) error {
	initOnce.Do(func() {
		extContext = extension.NewContext(cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtContext returns the shared extension context, or nil before initialisation.
func ExtContext() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
