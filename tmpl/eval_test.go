package tmpl

import (
	"context"
	"errors"
	"testing"
)

func renderString(
	t *testing.T,
	source string,
	env *Environment,
) (string, error) {
	t.Helper()

	tm, err := parse(context.Background(), source)
	if err != nil {
		return "", err
	}

	return tm.Render(context.Background(), env)
}

func TestRender_Expressions(t *testing.T) {
	tests := []struct {
		name   string
		source string
		bind   func(*Environment)
		want   string
	}{
		{
			name:   "identifier lookup",
			source: "{name}",
			bind:   func(e *Environment) { e.Bind("name", "Ada") },
			want:   "Ada",
		},
		{
			name:   "arithmetic",
			source: "{age * 12}",
			bind:   func(e *Environment) { e.Bind("age", 30) },
			want:   "360",
		},
		{
			name:   "method call uppercase",
			source: "{s.to_uppercase()}",
			bind:   func(e *Environment) { e.Bind("s", "paris") },
			want:   "PARIS",
		},
		{
			name:   "method call lowercase",
			source: "{s.to_lowercase()}",
			bind:   func(e *Environment) { e.Bind("s", "LOUD") },
			want:   "loud",
		},
		{
			name:   "uppercase predicate",
			source: "{s.is_uppercase()}",
			bind:   func(e *Environment) { e.Bind("s", "HELLO") },
			want:   "true",
		},
		{
			name:   "char predicate",
			source: "{c.is_lowercase()}",
			bind:   func(e *Environment) { e.Bind("c", 'q') },
			want:   "true",
		},
		{
			name:   "field access",
			source: "{user.name}",
			bind: func(e *Environment) {
				e.Bind("user", map[string]any{"name": "Ada"})
			},
			want: "Ada",
		},
		{
			name:   "indexing",
			source: "{xs[1]}",
			bind:   func(e *Environment) { e.Bind("xs", []int{10, 20, 30}) },
			want:   "20",
		},
		{
			name:   "sum method",
			source: "{xs.sum()}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   "6",
		},
		{
			name:   "min method",
			source: "{xs.min()}",
			bind:   func(e *Environment) { e.Bind("xs", []int{4, 1, 9}) },
			want:   "1",
		},
		{
			name:   "first method",
			source: "{xs.first()}",
			bind:   func(e *Environment) { e.Bind("xs", []string{"a", "b"}) },
			want:   "a",
		},
		{
			name:   "join method",
			source: "{xs.join(\"-\")}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   "1-2-3",
		},
		{
			// mixed elements prove the call lands on the checked builtin,
			// which widens to float when any element is a float
			name:   "sum method mixed numerics",
			source: "{xs.sum()}",
			bind:   func(e *Environment) { e.Bind("xs", []any{1, 2.5}) },
			want:   "3.5",
		},
		{
			name:   "join method texts",
			source: "{xs.join(\", \")}",
			bind:   func(e *Environment) { e.Bind("xs", []string{"a", "b"}) },
			want:   "a, b",
		},
		{
			name:   "contains substring",
			source: "{s.contains(\"ri\")}",
			bind:   func(e *Environment) { e.Bind("s", "paris") },
			want:   "true",
		},
		{
			name:   "contains element",
			source: "{xs.contains(2)}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   "true",
		},
		{
			name:   "length method",
			source: "{s.len()}",
			bind:   func(e *Environment) { e.Bind("s", "paris") },
			want:   "5",
		},
		{
			name:   "cast to int",
			source: "{f.as_int()}",
			bind:   func(e *Environment) { e.Bind("f", 3.9) },
			want:   "3",
		},
		{
			name:   "cast to float with precision",
			source: "{n.as_float():.1}",
			bind:   func(e *Environment) { e.Bind("n", 3) },
			want:   "3.0",
		},
		{
			name:   "filter pipeline",
			source: "{xs | filter(# > 1) | len()}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   "2",
		},
		{
			name:   "map pipeline",
			source: "{xs | map(# * 2) | sum()}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   "12",
		},
		{
			name:   "reduce pipeline",
			source: "{xs | reduce(#acc + #, 0)}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   "6",
		},
		{
			name:   "string concatenation",
			source: "{greeting + \", \" + name}",
			bind: func(e *Environment) {
				e.Bind("greeting", "hello").Bind("name", "Ada")
			},
			want: "hello, Ada",
		},
		{
			name:   "literal only expression",
			source: "{1 + 2}",
			bind:   func(*Environment) {},
			want:   "3",
		},
		{
			name:   "integer division truncates",
			source: "{a / b}",
			bind: func(e *Environment) {
				e.Bind("a", 7).Bind("b", 2)
			},
			want: "3",
		},
		{
			name:   "float division",
			source: "{a / b}",
			bind: func(e *Environment) {
				e.Bind("a", 7.0).Bind("b", 2)
			},
			want: "3.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvironment()
			tt.bind(env)

			got, err := renderString(t, tt.source, env)
			if err != nil {
				t.Fatalf("render %q error: %v", tt.source, err)
			}

			if got != tt.want {
				t.Errorf("render %q = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestRender_EvaluationErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		bind   func(*Environment)
		want   *Error
	}{
		{
			name:   "unresolved identifier",
			source: "{missing}",
			bind:   func(*Environment) {},
			want:   ErrUnresolvedName,
		},
		{
			name:   "unresolved in expression",
			source: "{age * 12}",
			bind:   func(*Environment) {},
			want:   ErrUnresolvedName,
		},
		{
			name:   "division by zero",
			source: "{a / b}",
			bind: func(e *Environment) {
				e.Bind("a", 1).Bind("b", 0)
			},
			want: ErrDivisionByZero,
		},
		{
			name:   "index out of range",
			source: "{xs[10]}",
			bind:   func(e *Environment) { e.Bind("xs", []int{1, 2, 3}) },
			want:   ErrIndex,
		},
		{
			name:   "min of empty sequence",
			source: "{xs.min()}",
			bind:   func(e *Environment) { e.Bind("xs", []int{}) },
			want:   ErrIndex,
		},
		{
			name:   "method type mismatch",
			source: "{n.to_uppercase()}",
			bind:   func(e *Environment) { e.Bind("n", 42) },
			want:   ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvironment()
			tt.bind(env)

			out, err := renderString(t, tt.source, env)
			if err == nil {
				t.Fatalf("render %q expected error, got %q", tt.source, out)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("render %q: expected %v, got %v",
					tt.source, tt.want, err)
			}

			if out != "" {
				t.Errorf("render %q: expected no partial output, got %q",
					tt.source, out)
			}
		})
	}
}

func TestParse_UnsupportedMethod(t *testing.T) {
	_, err := parse(context.Background(), "{s.frobnicate()}")
	if err == nil {
		t.Fatal("expected error for unknown method")
	}

	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation, got %v", err)
	}
}

func TestRender_PureEvaluation(t *testing.T) {
	// The same binding referenced twice must observe a stable snapshot
	env := NewEnvironment().Bind("xs", []int{3, 1, 2})

	got, err := renderString(t, "{xs.min()} {xs.min()} {xs:c}", env)
	if err != nil {
		t.Fatal(err)
	}

	if got != "1 1 [3, 1, 2]" {
		t.Errorf("expected stable snapshot, got %q", got)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"name", true},
		{"_private", true},
		{"x2", true},
		{"2x", false},
		{"a.b", false},
		{"a b", false},
		{"a+b", false},
		{"true", false},
		{"false", false},
		{"nil", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isIdentifier(tt.source); got != tt.want {
			t.Errorf("isIdentifier(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}
