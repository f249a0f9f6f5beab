//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the sorted profiling modes accepted by --pprof-mode.
// "quiet" is a modifier rather than a mode, so it is not listed.
var Modes = sync.OnceValue(
	func() []string {
		m := maps.Clone(profilers)
		delete(m, "quiet")

		return slices.Sorted(maps.Keys(m))
	},
)

// profilers maps mode names onto pkg/profile selectors.
var profilers = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
	"quiet":     profile.Quiet,
}

func start(mode, path string, quiet bool) interface{ Stop() } {
	sel, ok := profilers[mode]
	if !ok {
		return noop{}
	}

	opts := []func(*profile.Profile){sel}

	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}

	if quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
