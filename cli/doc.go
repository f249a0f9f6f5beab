// Package cli defines the command-line interface for cio.
//
// The interface is declared as a [CLI] struct parsed with
// [github.com/alecthomas/kong]. Logger flags take effect as soon as they
// are parsed so that diagnostics emitted during argument parsing already
// honor the requested level and format. Profiling flags are compiled in
// only when building with the pprof tag.
package cli
