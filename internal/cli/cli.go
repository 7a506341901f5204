// Package cli implements the hexatlas command-line interface.
//
// This package provides commands for generating texture atlases from palette
// files and managing the atlas artifact cache. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a texture atlas PNG for every palette file in a directory
//   - cache: Manage the atlas artifact cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

// appName is the application name used for directories and display.
const appName = "hexatlas"
