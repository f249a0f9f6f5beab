package tmpl

import (
	"strconv"
	"strings"
)

// Format renders a value under the given spec. Rendering is total:
// a spec that does not apply to the value's kind degrades to the kind's
// default presentation instead of failing.
func Format(v Value, spec Spec) string {
	switch v.Kind() {
	case KindInt:
		return formatInt(v.Int(), spec)

	case KindFloat:
		return formatFloat(v.Float(), spec)

	case KindBool:
		return strconv.FormatBool(v.Bool())

	case KindChar:
		return string(v.Char())

	case KindText:
		return v.Text()

	case KindSequence, KindMapping, KindRecord:
		return renderContainer(v, spec.Mode, 0)

	default:
		return "()"
	}
}

// formatInt renders an integer under numeric modifiers. Hex and binary
// render negative values using the 64-bit two's-complement bit pattern.
// Precision does not apply to integers except in exponential notation.
func formatInt(n int64, spec Spec) string {
	var s string

	switch {
	case spec.Hex:
		s = strconv.FormatUint(uint64(n), 16)

	case spec.Binary:
		s = strconv.FormatUint(uint64(n), 2)

	case spec.Exp:
		s = formatExponent(float64(n), spec.Precision)

	default:
		s = strconv.FormatInt(n, 10)
	}

	return zeroPad(s, spec.Width)
}

// formatFloat renders a float under numeric modifiers. Fixed precision
// uses strconv's correct rounding of the binary value, which resolves
// ties to even. Hex and binary do not apply to floats.
func formatFloat(f float64, spec Spec) string {
	var s string

	switch {
	case spec.Exp:
		s = formatExponent(f, spec.Precision)

	case spec.Precision >= 0:
		s = strconv.FormatFloat(f, 'f', spec.Precision, 64)

	default:
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}

	return zeroPad(s, spec.Width)
}

// formatExponent renders mantissa + "e" + exponent with no plus sign and
// no leading zeros in the exponent (3.14e0, 1.5e-3).
func formatExponent(f float64, precision int) string {
	s := strconv.FormatFloat(f, 'e', precision, 64)

	mantissa, exponent, ok := strings.Cut(s, "e")
	if !ok {
		return s // Inf or NaN
	}

	sign := ""

	switch exponent[0] {
	case '+':
		exponent = exponent[1:]
	case '-':
		sign, exponent = "-", exponent[1:]
	}

	exponent = strings.TrimLeft(exponent, "0")
	if exponent == "" {
		exponent = "0"
	}

	return mantissa + "e" + sign + exponent
}

// zeroPad left-pads with '0' to the given width, after the sign.
func zeroPad(s string, width int) string {
	if width <= 0 || len(s) >= width {
		return s
	}

	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	return sign + strings.Repeat("0", width-len(sign)-len(s)) + s
}
