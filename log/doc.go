// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("render complete", slog.Int("segments", n))
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// The package also maintains a default logger used by the package-level
// logging functions. It is reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithPretty(false))
//
// # Supported Levels
//
// Five log levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded. Trace sits below [slog.LevelDebug] and is used for the
// per-placeholder diagnostics of the template engine.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. When pretty printing is enabled, both formats are
// colorized with lipgloss styles.
package log
