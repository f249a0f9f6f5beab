// Package cmd implements the subcommands of the cio CLI: render, ask,
// repl, and version.
package cmd
