package tmpl

import (
	"strconv"
	"strings"
)

// indentUnit is one level of container indentation.
const indentUnit = "    "

// compactLimit is the longest single-line mapping rendered inline when
// array mode is asked to present a Mapping.
const compactLimit = 100

// renderContainer renders a Sequence, Mapping, or Record under the given
// mode. Indentation derives purely from nesting depth: depth starts at
// zero and increments once per nesting level.
func renderContainer(v Value, mode Mode, depth int) string {
	switch mode {
	case ModeCompact:
		return renderCompact(v)

	case ModePretty:
		switch v.Kind() {
		case KindMapping, KindRecord:
			return renderPretty(v, depth)
		case KindSequence:
			// No pretty-sequence variant distinct from array layout
			return renderArray(v, depth)
		default:
			return compactScalar(v)
		}

	case ModeArray:
		switch v.Kind() {
		case KindSequence:
			return renderArray(v, depth)
		case KindMapping, KindRecord:
			// Short mappings stay inline; long ones grow downward
			if c := renderCompact(v); len(c) < compactLimit {
				return c
			}

			return renderPretty(v, depth)
		default:
			return compactScalar(v)
		}

	default:
		switch v.Kind() {
		case KindSequence:
			return renderArray(v, depth)
		case KindMapping, KindRecord:
			return renderPretty(v, depth)
		default:
			return compactScalar(v)
		}
	}
}

// renderArray renders a Sequence as a bracketed list. A flat sequence
// stays on one line; once any element is itself a container, the layout
// switches to one element per line, indented one unit past depth, with
// the closing bracket dedented back to depth. Mapping elements render
// compact to bound vertical growth.
func renderArray(v Value, depth int) string {
	elems := v.Elems()
	if len(elems) == 0 {
		return "[]"
	}

	nested := false

	for _, e := range elems {
		if e.IsContainer() {
			nested = true

			break
		}
	}

	if !nested {
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = compactScalar(e)
		}

		return "[" + strings.Join(parts, ", ") + "]"
	}

	var b strings.Builder

	inner := strings.Repeat(indentUnit, depth+1)

	b.WriteString("[\n")

	for i, e := range elems {
		b.WriteString(inner)

		switch e.Kind() {
		case KindSequence:
			b.WriteString(renderArray(e, depth+1))
		case KindMapping, KindRecord:
			b.WriteString(renderCompact(e))
		default:
			b.WriteString(compactScalar(e))
		}

		if i < len(elems)-1 {
			b.WriteByte(',')
		}

		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte(']')

	return b.String()
}

// renderCompact renders any value on a single line, recursively compact
// at every depth.
func renderCompact(v Value) string {
	switch v.Kind() {
	case KindSequence:
		parts := make([]string, len(v.Elems()))
		for i, e := range v.Elems() {
			parts[i] = renderCompact(e)
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case KindMapping, KindRecord:
		pairs := v.entries()

		parts := make([]string, len(pairs))
		for i, p := range pairs {
			parts[i] = compactScalar(p.Key) + ": " + renderCompact(p.Val)
		}

		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return compactScalar(v)
	}
}

// renderPretty renders a Mapping or Record as a brace-delimited block,
// one pair per line at depth+1 indentation, with a trailing separator
// after every pair. Nested mappings recurse pretty, nested sequences
// recurse in array layout.
func renderPretty(v Value, depth int) string {
	pairs := v.entries()
	if len(pairs) == 0 {
		return "{}"
	}

	var b strings.Builder

	inner := strings.Repeat(indentUnit, depth+1)

	b.WriteString("{\n")

	for _, p := range pairs {
		b.WriteString(inner)
		b.WriteString(compactScalar(p.Key))
		b.WriteString(": ")

		switch p.Val.Kind() {
		case KindMapping, KindRecord:
			b.WriteString(renderPretty(p.Val, depth+1))
		case KindSequence:
			b.WriteString(renderArray(p.Val, depth+1))
		default:
			b.WriteString(compactScalar(p.Val))
		}

		b.WriteString(",\n")
	}

	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte('}')

	return b.String()
}

// compactScalar renders a scalar as it appears inside a container:
// text and characters quoted, floats always carrying a decimal point.
func compactScalar(v Value) string {
	switch v.Kind() {
	case KindText:
		return strconv.Quote(v.Text())

	case KindChar:
		return strconv.QuoteRune(v.Char())

	case KindInt:
		return strconv.FormatInt(v.Int(), 10)

	case KindFloat:
		return debugFloat(v.Float())

	case KindBool:
		return strconv.FormatBool(v.Bool())

	case KindUnit:
		return "()"

	default:
		// Containers delegated here render compact
		return renderCompact(v)
	}
}

// debugFloat renders a float for container display, keeping a ".0"
// suffix on integral values so the kind stays visible.
func debugFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnI") {
		s += ".0"
	}

	return s
}
