package tmpl

import "strconv"

// Kind identifies the structural variant stored in a [Value].
type Kind int

const (
	KindUnit Kind = iota
	KindInt
	KindFloat
	KindBool
	KindChar
	KindText
	KindSequence
	KindMapping
	KindRecord
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Pair is a single key/value entry of a Mapping.
type Pair struct {
	Key Value
	Val Value
}

// Field is a single named field of a Record.
type Field struct {
	Name string
	Val  Value
}

// Value is the closed tagged union all renderable data is normalized
// into. The zero value is the Unit value.
//
// Values are immutable once constructed. Container constructors retain
// the slices they are given, so callers must not mutate them afterward.
type Value struct {
	kind   Kind
	num    int64
	real   float64
	flag   bool
	char   rune
	text   string
	elems  []Value
	pairs  []Pair
	fields []Field
}

// Unit returns the unit value.
func Unit() Value { return Value{kind: KindUnit} }

// Int returns an integer value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, real: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Char returns a single-character value.
func Char(r rune) Value { return Value{kind: KindChar, char: r} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Sequence returns an ordered sequence of values.
func Sequence(elems ...Value) Value {
	return Value{kind: KindSequence, elems: elems}
}

// Mapping returns an ordered collection of key/value pairs.
// Pair order is preserved exactly as given; no sorting is applied.
func Mapping(pairs ...Pair) Value {
	return Value{kind: KindMapping, pairs: pairs}
}

// Record returns a value with named fields in declaration order.
func Record(fields ...Field) Value {
	return Value{kind: KindRecord, fields: fields}
}

// Kind returns the structural variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsContainer reports whether the value is a Sequence, Mapping, or Record.
func (v Value) IsContainer() bool {
	switch v.kind {
	case KindSequence, KindMapping, KindRecord:
		return true
	default:
		return false
	}
}

// Int returns the integer payload. Valid only for KindInt.
func (v Value) Int() int64 { return v.num }

// Float returns the floating-point payload. Valid only for KindFloat.
func (v Value) Float() float64 { return v.real }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.flag }

// Char returns the character payload. Valid only for KindChar.
func (v Value) Char() rune { return v.char }

// Text returns the text payload. Valid only for KindText.
func (v Value) Text() string { return v.text }

// Elems returns the elements of a Sequence, or nil for other kinds.
func (v Value) Elems() []Value { return v.elems }

// Pairs returns the key/value pairs of a Mapping, or nil for other kinds.
func (v Value) Pairs() []Pair { return v.pairs }

// Fields returns the named fields of a Record, or nil for other kinds.
func (v Value) Fields() []Field { return v.fields }

// Len returns the element count for containers and text, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.elems)
	case KindMapping:
		return len(v.pairs)
	case KindRecord:
		return len(v.fields)
	case KindText:
		return len(v.text)
	default:
		return 0
	}
}

// entries normalizes Mapping and Record values into a flat pair list.
// Record field names become Text keys.
func (v Value) entries() []Pair {
	switch v.kind {
	case KindMapping:
		return v.pairs

	case KindRecord:
		pairs := make([]Pair, len(v.fields))
		for i, f := range v.fields {
			pairs[i] = Pair{Key: Text(f.Name), Val: f.Val}
		}

		return pairs

	default:
		return nil
	}
}

// Native converts the value into its Go representation for expression
// evaluation. Mapping and Record lose their pair order in the conversion;
// order-sensitive rendering must use the Value directly.
func (v Value) Native() any {
	switch v.kind {
	case KindUnit:
		return nil

	case KindInt:
		return v.num

	case KindFloat:
		return v.real

	case KindBool:
		return v.flag

	case KindChar:
		return v.char

	case KindText:
		return v.text

	case KindSequence:
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Native()
		}

		return out

	case KindMapping:
		out := make(map[string]any, len(v.pairs))
		for _, p := range v.pairs {
			out[p.Key.keyString()] = p.Val.Native()
		}

		return out

	case KindRecord:
		out := make(map[string]any, len(v.fields))
		for _, f := range v.fields {
			out[f.Name] = f.Val.Native()
		}

		return out

	default:
		return nil
	}
}

// keyString renders a value for use as a native map key.
func (v Value) keyString() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindChar:
		return string(v.char)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}
