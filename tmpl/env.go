package tmpl

import (
	yaml "github.com/goccy/go-yaml"
)

// Environment is the name-to-value mapping placeholder expressions are
// evaluated against. Bindings preserve insertion order so that an
// identifier placeholder observes its value's original pair order.
//
// An Environment is constructed per render call and is not safe for
// concurrent mutation; concurrent renders must use separate instances
// or stop binding before rendering begins.
type Environment struct {
	names  []string
	values map[string]Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Bind adds a named value to the environment, converting it through
// [ValueOf]. Rebinding an existing name replaces its value but keeps its
// original position. Returns the environment for chaining.
func (e *Environment) Bind(name string, v any) *Environment {
	if _, exists := e.values[name]; !exists {
		e.names = append(e.names, name)
	}

	e.values[name] = ValueOf(v)

	return e
}

// BindPairs adds one binding per pair, using each pair's key text as the
// binding name. Non-text keys use their rendered key form.
func (e *Environment) BindPairs(pairs []Pair) *Environment {
	for _, p := range pairs {
		e.Bind(p.Key.keyString(), p.Val)
	}

	return e
}

// BindMapSlice adds one binding per item of an order-preserving YAML
// mapping, keeping document order.
func (e *Environment) BindMapSlice(ms yaml.MapSlice) *Environment {
	for _, item := range ms {
		e.Bind(ValueOf(item.Key).keyString(), ValueOf(item.Value))
	}

	return e
}

// Lookup returns the value bound to name.
func (e *Environment) Lookup(name string) (Value, bool) {
	if e == nil {
		return Value{}, false
	}

	v, ok := e.values[name]

	return v, ok
}

// Names returns the bound names in insertion order.
func (e *Environment) Names() []string {
	if e == nil {
		return nil
	}

	return e.names
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}

	return len(e.names)
}

// native converts all bindings to their Go representations for
// expression execution.
func (e *Environment) native() map[string]any {
	if e == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(e.values))
	for name, v := range e.values {
		out[name] = v.Native()
	}

	return out
}
