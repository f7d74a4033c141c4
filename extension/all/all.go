// Package all imports all built-in stockviz extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/stockviz/extension/check"
	_ "github.com/jpl-au/stockviz/extension/core"
)
