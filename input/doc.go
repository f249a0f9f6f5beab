// Package input implements a typed console input reader: it prompts,
// reads one line of text, attempts a type-directed parse into the target
// type, and retries with a diagnostic until a value is accepted.
//
// The retry loop is unbounded by design. A caller that wants bounded
// waiting or a retry limit wraps the call; the only fatal condition is
// failure of the underlying stream, surfaced as [ErrInputClosed].
//
// # Basic Usage
//
//	r := input.New(os.Stdin)
//	age, err := input.Read[int64](r, "age: ")
//
// Supported target types are int64, float64, bool, rune, and string.
// Convenience methods ([Reader.Int], [Reader.Float], [Reader.Bool],
// [Reader.Char], [Reader.Text]) cover each.
package input
