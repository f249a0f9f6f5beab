package tmpl

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr/vm"
)

// Segment is one node of a parsed template: either a run of literal text
// or a placeholder holding an expression with an optional format spec.
type Segment struct {
	Literal string // literal text, empty for placeholders
	Expr    string // expression source, empty for literals
	Spec    Spec
	HasSpec bool

	placeholder bool
	ident       string // plain-identifier fast path, "" otherwise
	idents      []string
	program     *vm.Program
}

// IsPlaceholder reports whether the segment is a placeholder.
func (s Segment) IsPlaceholder() bool { return s.placeholder }

// parseSegments tokenizes a template into an ordered segment list.
//
// A single left-to-right scan over the source. Literal "{{" and "}}"
// collapse to one brace. An unescaped "{" opens a placeholder; bracket,
// paren, brace, and quote nesting is tracked so delimiters inside the
// expression do not terminate it. The first unquoted ":" at nesting
// depth zero separates the expression from its format spec.
func parseSegments(source string) ([]Segment, error) {
	var (
		segments []Segment
		literal  strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(source)

	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				literal.WriteByte('{')
				i += 2

				continue
			}

			flush()

			seg, next, err := scanPlaceholder(source, runes, i+1)
			if err != nil {
				return nil, err
			}

			segments = append(segments, seg)
			i = next

		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				literal.WriteByte('}')
				i += 2

				continue
			}

			return nil, ErrMalformedTemplate.With(
				slog.String("template", source),
				slog.String("issue", "unmatched closing brace"),
				slog.Int("offset", i),
			)

		default:
			literal.WriteRune(runes[i])
			i++
		}
	}

	flush()

	return segments, nil
}

// scanPlaceholder scans a placeholder body starting just after its
// opening brace and returns the placeholder segment along with the index
// of the first rune after the closing brace.
func scanPlaceholder(
	source string,
	runes []rune,
	start int,
) (Segment, int, error) {
	var (
		depth   int
		quote   rune // active quote delimiter, 0 when outside quotes
		escaped bool
		colon   = -1 // index of the expr/spec separator, relative to runes
	)

	for i := start; i < len(runes); i++ {
		c := runes[i]

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'', '`':
			quote = c

		case '[', '(', '{':
			depth++

		case ']', ')':
			depth--

		case ':':
			if depth == 0 && colon < 0 {
				colon = i
			}

		case '}':
			if depth > 0 {
				depth--

				continue
			}

			return makeSegment(source, runes, start, colon, i)
		}
	}

	return Segment{}, 0, ErrMalformedTemplate.With(
		slog.String("template", source),
		slog.String("issue", "unclosed placeholder"),
		slog.Int("offset", start-1),
	)
}

// makeSegment splits a scanned placeholder body into expression and spec.
func makeSegment(
	source string,
	runes []rune,
	start, colon, end int,
) (Segment, int, error) {
	exprEnd := end
	if colon >= 0 {
		exprEnd = colon
	}

	expr := strings.TrimSpace(string(runes[start:exprEnd]))
	if expr == "" {
		return Segment{}, 0, ErrMalformedTemplate.With(
			slog.String("template", source),
			slog.String("issue", "empty placeholder"),
			slog.Int("offset", start-1),
		)
	}

	seg := Segment{
		Expr:        expr,
		Spec:        DefaultSpec(),
		placeholder: true,
	}

	if colon >= 0 {
		spec, err := ParseSpec(string(runes[colon+1 : end]))
		if err != nil {
			return Segment{}, 0, ErrMalformedTemplate.Wrap(err).With(
				slog.String("template", source),
				slog.Int("offset", colon),
			)
		}

		seg.Spec = spec
		seg.HasSpec = true
	}

	return seg, end + 1, nil
}
