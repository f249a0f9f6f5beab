package tmpl

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/cio/log"
)

// compileSegment prepares a placeholder for evaluation.
//
// Plain identifiers skip expression compilation entirely: they resolve
// by direct Environment lookup at render time, which also preserves the
// bound value's pair order. Everything else compiles through expr-lang
// with the method patcher applied.
func compileSegment(seg *Segment, logger log.Logger) error {
	if isIdentifier(seg.Expr) {
		seg.ident = seg.Expr

		return nil
	}

	patcher := &methodPatcher{logger: logger}
	collector := newIdentCollector()

	program, err := expr.Compile(seg.Expr,
		expr.AllowUndefinedVariables(),
		expr.Patch(patcher),
		expr.Patch(collector),
	)
	if err != nil {
		return ErrExprCompile.Wrap(err).
			With(slog.String("source", seg.Expr))
	}

	if len(patcher.unsupported) > 0 {
		return ErrUnsupportedOperation.With(
			slog.String("source", seg.Expr),
			slog.String("method", patcher.unsupported[0]),
		)
	}

	seg.program = program
	seg.idents = collector.names()

	return nil
}

// evaluate resolves a placeholder against the environment.
func (t *Template) evaluate(
	ctx context.Context,
	seg *Segment,
	env *Environment,
) (Value, error) {
	if seg.ident != "" {
		v, ok := env.Lookup(seg.ident)
		if !ok {
			return Value{}, ErrUnresolvedName.With(
				slog.String("name", seg.ident),
			)
		}

		return v, nil
	}

	for _, name := range seg.idents {
		if _, ok := env.Lookup(name); !ok {
			return Value{}, ErrUnresolvedName.With(
				slog.String("name", name),
				slog.String("source", seg.Expr),
			)
		}
	}

	runEnv := builtinEnv()
	maps.Copy(runEnv, env.native())

	out, err := vm.Run(seg.program, runEnv)
	if err != nil {
		return Value{}, classifyEvalError(err, seg.Expr)
	}

	t.logger.TraceContext(ctx, "evaluate placeholder",
		slog.String("source", seg.Expr),
		slog.String("result_type", resultTypeName(out)))

	return ValueOf(out), nil
}

// isIdentifier reports whether source is a bare identifier.
func isIdentifier(source string) bool {
	if source == "" {
		return false
	}

	for i, r := range source {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	// Literals parse as identifiers but are not lookups
	switch source {
	case "true", "false", "nil":
		return false
	}

	return true
}

// classifyEvalError maps an execution failure onto the error taxonomy.
// Failures raised by built-in functions already carry their class;
// expr-lang runtime failures are classified by message.
func classifyEvalError(err error, source string) error {
	classified := &Error{}
	if errors.As(err, &classified) {
		return classified.With(slog.String("source", source))
	}

	msg := err.Error()

	var class *Error

	switch {
	case strings.Contains(msg, "divide") ||
		strings.Contains(msg, "division by zero"):
		class = ErrDivisionByZero

	case strings.Contains(msg, "out of range") ||
		strings.Contains(msg, "out of bounds") ||
		strings.Contains(msg, "index"):
		class = ErrIndex

	case strings.Contains(msg, "cannot fetch") ||
		strings.Contains(msg, "unknown name") ||
		strings.Contains(msg, "undefined"):
		class = ErrUnresolvedName

	case strings.Contains(msg, "invalid operation") ||
		strings.Contains(msg, "mismatch") ||
		strings.Contains(msg, "cannot use") ||
		strings.Contains(msg, "interface conversion"):
		class = ErrTypeMismatch

	default:
		class = ErrExprEvaluate
	}

	return class.Wrap(err).With(slog.String("source", source))
}

// resultTypeName returns a string representation of a value's type.
func resultTypeName(v any) string {
	if v == nil {
		return "nil"
	}

	switch v.(type) {
	case bool:
		return "bool"
	case int, int8, int16, int32, int64:
		return "int"
	case uint, uint8, uint16, uint32, uint64:
		return "uint"
	case float32, float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
