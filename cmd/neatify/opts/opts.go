package opts

import "io"

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string    // Explicit config path, empty to search for .neatify.json
	Debug      bool      // Enable debug logging
	Check      bool      // Report files that would change without writing
	Path       string    // Overrides the config root when set
	Console    io.Writer // Where user-facing output goes
}
