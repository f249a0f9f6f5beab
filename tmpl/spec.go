package tmpl

import (
	"log/slog"
	"strings"
)

// Mode selects a container rendering presentation.
type Mode int

const (
	// ModeNone applies the kind's default presentation:
	// array layout for Sequence, pretty map layout for Mapping and Record.
	ModeNone Mode = iota

	// ModeArray renders a Sequence as a bracketed list, switching to
	// one-element-per-line layout when elements are themselves containers.
	ModeArray

	// ModeCompact renders any container on a single line at every depth.
	ModeCompact

	// ModePretty renders a Mapping as a brace-delimited block with one
	// key/value pair per line.
	ModePretty
)

// String returns the spec letter of the mode, or "" for ModeNone.
func (m Mode) String() string {
	switch m {
	case ModeArray:
		return "a"
	case ModeCompact:
		return "c"
	case ModePretty:
		return "j"
	default:
		return ""
	}
}

// Spec holds the parsed format specifier of a placeholder.
//
// Numeric modifiers may combine with each other but not with a mode
// letter, and at most one mode letter may appear.
type Spec struct {
	Precision int // fixed decimal places, -1 when unset
	Width     int // zero-pad width, 0 when unset
	Hex       bool
	Binary    bool
	Exp       bool
	Mode      Mode
}

// DefaultSpec returns the spec applied when a placeholder has none.
func DefaultSpec() Spec { return Spec{Precision: -1} }

// isNumeric reports whether any numeric modifier is set.
func (s Spec) isNumeric() bool {
	return s.Precision >= 0 || s.Width > 0 || s.Hex || s.Binary || s.Exp
}

// String reconstructs the specifier text.
func (s Spec) String() string {
	var b strings.Builder

	if s.Width > 0 {
		b.WriteByte('0')
		writeInt(&b, s.Width)
	}

	if s.Precision >= 0 {
		b.WriteByte('.')
		writeInt(&b, s.Precision)
	}

	if s.Hex {
		b.WriteByte('x')
	}

	if s.Binary {
		b.WriteByte('b')
	}

	if s.Exp {
		b.WriteByte('e')
	}

	b.WriteString(s.Mode.String())

	return b.String()
}

func writeInt(b *strings.Builder, n int) {
	if n >= 10 {
		writeInt(b, n/10)
	}

	b.WriteByte(byte('0' + n%10))
}

// ParseSpec parses the format-spec mini-language:
//
//	.N  fixed precision
//	0N  zero-pad to width N
//	x   hexadecimal (integers)
//	b   binary (integers)
//	e   exponential notation
//	a   array mode
//	c   compact mode
//	j   pretty-map mode
func ParseSpec(text string) (Spec, error) {
	spec := DefaultSpec()

	i := 0
	for i < len(text) {
		switch c := text[i]; {
		case c == '.':
			n, next, ok := scanDigits(text, i+1)
			if !ok {
				return spec, ErrMalformedSpec.With(
					slog.String("spec", text),
					slog.String("issue", "precision requires digits"),
				)
			}

			spec.Precision = n
			i = next

		case c == '0':
			n, next, ok := scanDigits(text, i+1)
			if !ok || n == 0 {
				return spec, ErrMalformedSpec.With(
					slog.String("spec", text),
					slog.String("issue", "zero-pad requires a width"),
				)
			}

			spec.Width = n
			i = next

		case c == 'x':
			spec.Hex = true
			i++

		case c == 'b':
			spec.Binary = true
			i++

		case c == 'e':
			spec.Exp = true
			i++

		case c == 'a' || c == 'c' || c == 'j':
			if spec.Mode != ModeNone {
				return spec, ErrMalformedSpec.With(
					slog.String("spec", text),
					slog.String("issue", "multiple mode letters"),
				)
			}

			switch c {
			case 'a':
				spec.Mode = ModeArray
			case 'c':
				spec.Mode = ModeCompact
			case 'j':
				spec.Mode = ModePretty
			}

			i++

		default:
			return spec, ErrMalformedSpec.With(
				slog.String("spec", text),
				slog.String("token", string(c)),
			)
		}
	}

	if spec.Mode != ModeNone && spec.isNumeric() {
		return spec, ErrMalformedSpec.With(
			slog.String("spec", text),
			slog.String("issue", "mode letters do not combine with numeric tokens"),
		)
	}

	return spec, nil
}

// scanDigits reads a decimal integer starting at i.
func scanDigits(s string, i int) (n, next int, ok bool) {
	next = i
	for next < len(s) && s[next] >= '0' && s[next] <= '9' {
		n = n*10 + int(s[next]-'0')
		next++
	}

	return n, next, next > i
}
