package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ardnew/cio/log"
)

// state is the read loop's position: prompting until a parse succeeds.
type state int

const (
	statePrompting state = iota
	stateDone
)

// Readable enumerates the target types a line of input can parse into.
type Readable interface {
	int64 | float64 | bool | rune | string
}

// Reader prompts for and parses typed values from a line-based stream.
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	diag   io.Writer
	logger log.Logger
}

// Option applies a configuration option to a Reader.
type Option func(*Reader)

// WithOutput sets the stream prompts are written to.
func WithOutput(w io.Writer) Option {
	return func(r *Reader) {
		r.out = w
	}
}

// WithDiag sets the stream parse diagnostics are written to.
func WithDiag(w io.Writer) Option {
	return func(r *Reader) {
		r.diag = w
	}
}

// WithLogger sets the logger used for trace diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// New creates a Reader over the given input stream. Prompts default to
// [os.Stdout] and diagnostics to [os.Stderr].
func New(in io.Reader, opts ...Option) *Reader {
	r := &Reader{
		in:   bufio.NewReader(in),
		out:  os.Stdout,
		diag: os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Read prompts until one line of input parses as T.
//
// The prompt is written without a trailing line break, one line is read,
// and a type-directed parse is attempted. On failure a diagnostic naming
// the target type and the rejected input is written to the diagnostic
// stream and the same prompt is re-displayed. Empty lines are always
// rejected. The loop has no retry bound; only stream failure ends it
// early, with [ErrInputClosed].
func Read[T Readable](r *Reader, prompt string) (T, error) {
	var value T

	for st := statePrompting; ; {
		switch st {
		case stateDone:
			return value, nil

		case statePrompting:
			if _, err := io.WriteString(r.out, prompt); err != nil {
				return value, ErrInputClosed.Wrap(err)
			}

			line, err := r.readLine()
			if err != nil {
				return value, err
			}

			if strings.TrimSpace(line) == "" {
				fmt.Fprintln(r.diag, "Error: Unauthorized empty input.")

				continue
			}

			value, err = parseLine[T](line)
			if err != nil {
				fmt.Fprintf(r.diag, "Error: cannot parse %q as %s.\n",
					line, typeName[T]())

				r.logger.Trace("reject input",
					slog.String("input", line),
					slog.String("target", typeName[T]()))

				continue
			}

			st = stateDone
		}
	}
}

// Int reads an integer: optional sign followed by decimal digits.
func (r *Reader) Int(prompt string) (int64, error) {
	return Read[int64](r, prompt)
}

// Float reads a standard decimal or exponential floating-point literal.
func (r *Reader) Float(prompt string) (float64, error) {
	return Read[float64](r, prompt)
}

// Bool reads exactly "true" or "false", case-sensitive.
func (r *Reader) Bool(prompt string) (bool, error) {
	return Read[bool](r, prompt)
}

// Char reads exactly one character.
func (r *Reader) Char(prompt string) (rune, error) {
	return Read[rune](r, prompt)
}

// Text reads one non-empty line with its line terminator stripped.
func (r *Reader) Text(prompt string) (string, error) {
	return Read[string](r, prompt)
}

// readLine reads one line with its terminator stripped. A final
// unterminated line before EOF is still delivered.
func (r *Reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", ErrInputClosed.Wrap(err)
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// parseLine attempts the type-directed parse of one terminator-stripped
// line. Numeric and character targets ignore surrounding whitespace;
// text targets receive the line as-is.
func parseLine[T Readable](line string) (T, error) {
	var value T

	trimmed := strings.TrimSpace(line)

	switch p := any(&value).(type) {
	case *int64:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return value, err
		}

		*p = n

	case *float64:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return value, err
		}

		*p = f

	case *bool:
		// Exact match only: ParseBool also accepts 0/1/TRUE/False
		switch trimmed {
		case "true":
			*p = true
		case "false":
			*p = false
		default:
			return value, strconv.ErrSyntax
		}

	case *rune:
		runes := []rune(trimmed)
		if len(runes) != 1 {
			return value, strconv.ErrSyntax
		}

		*p = runes[0]

	case *string:
		*p = line
	}

	return value, nil
}

// typeName names the target type in diagnostics.
func typeName[T Readable]() string {
	var value T

	switch any(value).(type) {
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case rune:
		return "character"
	default:
		return "text"
	}
}
