// Package tmpl implements a console text-interpolation engine: template
// strings embed expressions and format directives in placeholders, which
// are evaluated against a caller-supplied environment and rendered with
// structure-aware formatting.
//
// # Template Syntax
//
// A placeholder is written "{expr}" or "{expr:spec}"; "{{" and "}}"
// escape to literal braces. The expression grammar is supplied by
// expr-lang, extended with a fixed allow-list of method-like calls
// ("s.to_uppercase()", "xs.sum()") that rewrite onto built-in functions.
//
// The format spec combines numeric modifiers (".N" precision, "0N"
// zero-pad, "x" hex, "b" binary, "e" exponential) or selects one of
// three container modes: "a" (array layout with depth-adaptive
// indentation), "c" (compact single line), and "j" (pretty map block).
//
// # Basic Usage
//
//	env := tmpl.NewEnvironment().
//		Bind("name", "Ada").
//		Bind("age", 30)
//
//	out, err := tmpl.Render(ctx, "{name} is {age * 12} months old", env)
//
// Parsed templates are cached process-wide by source hash, so repeated
// renders of the same template skip parsing and compilation.
//
// # Values
//
// All data is normalized into the [Value] union (Int, Float, Bool, Char,
// Text, Sequence, Mapping, Record, Unit) at the [ValueOf] adapter
// boundary. Order-preserving inputs keep their pair order through
// rendering; Go maps are sorted by key for deterministic output.
//
// Rendering is total: specs that do not apply to a value's kind degrade
// to the kind's default presentation. Evaluation failures surface as
// sentinel errors ([ErrUnresolvedName], [ErrTypeMismatch],
// [ErrDivisionByZero], [ErrIndex], [ErrUnsupportedOperation]) and abort
// the render with no partial output.
package tmpl
