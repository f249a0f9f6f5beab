package tmpl

// This file defines the built-in evaluation environment available to all
// placeholder expressions, along with the method-call allow-list that maps
// receiver syntax onto it. The environment is lazily initialized once per
// process via builtinCache and cloned on every access so callers may
// mutate the returned map without affecting the shared cache.

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/ardnew/mung"
)

// methodTargets is the allow-list of method-like calls. A placeholder
// expression `recv.name(args)` is rewritten to `target(recv, args)`;
// any method name outside this table is an unsupported operation.
//
// Target names must not collide with expr-lang's own builtin functions
// (len, sum, join, min, max, ...): the compiler resolves a colliding
// identifier to the builtin, not to the function injected through the
// run environment, so those methods rewrite to distinct names.
//
//nolint:gochecknoglobals
var methodTargets = map[string]string{
	"to_uppercase": "to_uppercase",
	"to_lowercase": "to_lowercase",
	"is_uppercase": "is_uppercase",
	"is_lowercase": "is_lowercase",
	"as_int":       "as_int",
	"as_float":     "as_float",
	"len":          "length",
	"contains":     "contains",
	"join":         "join_with",
	"sum":          "sum_of",
	"min":          "min_of",
	"max":          "max_of",
	"first":        "first",
	"last":         "last",
}

// Private singleton cache.
//
//nolint:gochecknoglobals
var (
	builtinOnce  sync.Once
	builtinCache map[string]any
)

// builtinEnv returns a clone of the lazily-initialized, process-scoped
// environment containing built-in functions.
func builtinEnv() map[string]any {
	builtinOnce.Do(func() {
		builtinCache = map[string]any{
			"to_uppercase": toUppercase,
			"to_lowercase": toLowercase,
			"is_uppercase": isUppercase,
			"is_lowercase": isLowercase,
			"as_int":       asInt,
			"as_float":     asFloat,
			"length":       lengthOf,
			"contains":     containsValue,
			"join_with":    joinValues,
			"sum_of":       sumValues,
			"min_of":       minValue,
			"max_of":       maxValue,
			"first":        firstValue,
			"last":         lastValue,
			"div":          divValues,
		}
	})

	return maps.Clone(builtinCache)
}

// Builtins returns the sorted method names of the allow-list.
// This is useful for code completion and introspection.
func Builtins() []string {
	names := slices.Collect(maps.Keys(methodTargets))
	slices.Sort(names)

	return names
}

// isReserved reports whether name is claimed by the built-in environment
// and therefore never requires an Environment binding.
func isReserved(name string) bool {
	if _, ok := builtinCache[name]; ok {
		return true
	}

	// builtinCache may not be initialized yet
	switch name {
	case "to_uppercase", "to_lowercase", "is_uppercase", "is_lowercase",
		"as_int", "as_float", "length", "contains", "join_with", "sum_of",
		"min_of", "max_of", "first", "last", "div":
		return true
	}

	return false
}

// textOf extracts the text content of a string or character argument.
func textOf(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case rune:
		return string(t), nil
	default:
		return "", ErrTypeMismatch.With(
			slog.String("want", "text or char"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}
}

func toUppercase(v any) (string, error) {
	s, err := textOf(v)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(s), nil
}

func toLowercase(v any) (string, error) {
	s, err := textOf(v)
	if err != nil {
		return "", err
	}

	return strings.ToLower(s), nil
}

// isUppercase reports whether the argument contains at least one letter
// and no lowercase letters.
func isUppercase(v any) (bool, error) {
	s, err := textOf(v)
	if err != nil {
		return false, err
	}

	cased := false

	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}

		cased = true

		if !unicode.IsUpper(r) {
			return false, nil
		}
	}

	return cased, nil
}

// isLowercase reports whether the argument contains at least one letter
// and no uppercase letters.
func isLowercase(v any) (bool, error) {
	s, err := textOf(v)
	if err != nil {
		return false, err
	}

	cased := false

	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}

		cased = true

		if !unicode.IsLower(r) {
			return false, nil
		}
	}

	return cased, nil
}

func asInt(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case rune:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, ErrTypeMismatch.Wrap(err).
				With(slog.String("value", t))
		}

		return n, nil
	default:
		return 0, ErrTypeMismatch.With(
			slog.String("want", "numeric"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}
}

func asFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case int:
		return float64(t), nil
	case rune:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, ErrTypeMismatch.Wrap(err).
				With(slog.String("value", t))
		}

		return f, nil
	default:
		return 0, ErrTypeMismatch.With(
			slog.String("want", "numeric"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}
}

func lengthOf(v any) (int, error) {
	switch t := v.(type) {
	case string:
		return len(t), nil
	case []any:
		return len(t), nil
	case map[string]any:
		return len(t), nil
	default:
		return 0, ErrTypeMismatch.With(
			slog.String("want", "text or container"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}
}

// containsValue reports substring containment for text, element
// membership for sequences, and key presence for mappings.
func containsValue(container, elem any) (bool, error) {
	switch t := container.(type) {
	case string:
		s, err := textOf(elem)
		if err != nil {
			return false, err
		}

		return strings.Contains(t, s), nil

	case []any:
		for _, e := range t {
			if looseEqual(e, elem) {
				return true, nil
			}
		}

		return false, nil

	case map[string]any:
		s, err := textOf(elem)
		if err != nil {
			return false, err
		}

		_, ok := t[s]

		return ok, nil

	default:
		return false, ErrTypeMismatch.With(
			slog.String("want", "text or container"),
			slog.String("got", fmt.Sprintf("%T", container)),
		)
	}
}

// joinValues concatenates sequence elements with a delimiter.
func joinValues(v any, delim string) (string, error) {
	seq, ok := v.([]any)
	if !ok {
		return "", ErrTypeMismatch.With(
			slog.String("want", "sequence"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}

	items := make([]string, len(seq))
	for i, e := range seq {
		items[i] = stringify(e)
	}

	return mung.Make(
		mung.WithDelim(delim),
		mung.WithSubjectItems(items...),
	).String(), nil
}

// sumValues adds the elements of a numeric sequence. The result is an
// integer unless any element is a float.
func sumValues(v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, ErrTypeMismatch.With(
			slog.String("want", "sequence"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}

	var (
		total   float64
		integer = true
	)

	for _, e := range seq {
		f, isInt, ok := numericValue(e)
		if !ok {
			return nil, ErrTypeMismatch.With(
				slog.String("want", "numeric element"),
				slog.String("got", fmt.Sprintf("%T", e)),
			)
		}

		integer = integer && isInt
		total += f
	}

	if integer {
		return int64(total), nil
	}

	return total, nil
}

// divValues divides two numbers. A zero divisor is an error; two integer
// operands divide with truncation, any float operand divides as float.
// The "/" operator compiles to this function (see methodPatcher).
func divValues(a, b any) (any, error) {
	fa, aint, aok := numericValue(a)
	fb, bint, bok := numericValue(b)

	if !aok || !bok {
		return nil, ErrTypeMismatch.With(
			slog.String("want", "numeric operands"),
			slog.String("got", fmt.Sprintf("%T and %T", a, b)),
		)
	}

	if fb == 0 {
		return nil, ErrDivisionByZero.With(
			slog.String("dividend", stringify(a)),
		)
	}

	if aint && bint {
		return int64(fa) / int64(fb), nil
	}

	return fa / fb, nil
}

func minValue(v any) (any, error) { return extremeValue(v, -1) }

func maxValue(v any) (any, error) { return extremeValue(v, 1) }

// extremeValue returns the minimum (sign < 0) or maximum (sign > 0)
// element of a sequence of numbers or of texts.
func extremeValue(v any, sign int) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, ErrTypeMismatch.With(
			slog.String("want", "sequence"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}

	if len(seq) == 0 {
		return nil, ErrIndex.With(slog.String("issue", "empty sequence"))
	}

	best := seq[0]

	for _, e := range seq[1:] {
		better, err := compareValues(e, best)
		if err != nil {
			return nil, err
		}

		if better*sign > 0 {
			best = e
		}
	}

	return best, nil
}

// compareValues orders two elements, numerically when both are numbers,
// lexically when both are text.
func compareValues(a, b any) (int, error) {
	fa, _, aok := numericValue(a)
	fb, _, bok := numericValue(b)

	if aok && bok {
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}

	sa, saok := a.(string)
	sb, sbok := b.(string)

	if saok && sbok {
		return strings.Compare(sa, sb), nil
	}

	return 0, ErrTypeMismatch.With(
		slog.String("want", "comparable elements"),
		slog.String("got", fmt.Sprintf("%T and %T", a, b)),
	)
}

func firstValue(v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, ErrTypeMismatch.With(
			slog.String("want", "sequence"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}

	if len(seq) == 0 {
		return nil, ErrIndex.With(slog.String("issue", "empty sequence"))
	}

	return seq[0], nil
}

func lastValue(v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, ErrTypeMismatch.With(
			slog.String("want", "sequence"),
			slog.String("got", fmt.Sprintf("%T", v)),
		)
	}

	if len(seq) == 0 {
		return nil, ErrIndex.With(slog.String("issue", "empty sequence"))
	}

	return seq[len(seq)-1], nil
}

// numericValue widens any numeric native to float64.
func numericValue(v any) (f float64, integer, ok bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true, true
	case int:
		return float64(t), true, true
	case rune:
		return float64(t), true, true
	case float64:
		return t, false, true
	default:
		return 0, false, false
	}
}

// looseEqual compares two natives with numeric widening.
func looseEqual(a, b any) bool {
	fa, _, aok := numericValue(a)
	fb, _, bok := numericValue(b)

	if aok && bok {
		return fa == fb
	}

	return a == b
}

// stringify renders a native for text concatenation, without quoting.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case rune:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
