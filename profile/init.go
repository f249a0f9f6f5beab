package profile

// Config produces the mode, output directory, and quiet flag that govern
// a profiling session. The zero settings leave profiling disabled.
type Config func() (mode, path string, quiet bool)

// Start begins a profiling session and returns a handle whose Stop method
// ends it and flushes the profile file.
//
// When the mode is empty, or the binary was built without the pprof tag,
// the returned handle does nothing. Start and Stop never fail, so render
// and REPL paths call them unconditionally.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return noop{}
	}

	return start(mode, path, quiet)
}

// WithMode sets the profiling mode to activate.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithPath sets the directory profile files are written to.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithQuiet suppresses the profiler's startup and shutdown messages.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// noop is the handle returned when profiling is disabled.
type noop struct{}

func (noop) Stop() {}
