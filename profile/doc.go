// Package profile provides optional runtime profiling for the cio command.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// Without the tag, every operation is a no-op with zero runtime overhead,
// so callers can wire profiling unconditionally.
//
// The supported modes when built with the tag are allocs, block, clock,
// cpu, goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to
// retrieve the list programmatically; the cio command exposes it through
// the --pprof-mode flag:
//
//	go build -tags pprof
//	./cio --pprof-mode cpu render '{x}' --env env.yaml
//
// Profile files are written to the directory given by --pprof-dir, which
// defaults to the pprof subdirectory of the user cache directory. Analyze
// them with go tool pprof:
//
//	go tool pprof ./cio ~/.cache/cio/pprof/cpu.pprof
//
// Building with the tag also imports [net/http/pprof], registering the
// /debug/pprof/ handlers for any HTTP server the process may start.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
