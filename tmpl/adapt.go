package tmpl

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// ValueOf converts a concrete Go value into the [Value] union.
//
// Scalars map directly: signed and unsigned integers become Int (except
// rune, which becomes Char), floats become Float, strings become Text.
// Ordered pair collections ([]Pair, [yaml.MapSlice]) become Mapping with
// pair order preserved. Go maps become Mapping sorted by key, since their
// iteration order is unspecified. Slices and arrays become Sequence,
// structs become Record over their exported fields, and nil becomes Unit.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Unit()

	case Value:
		return t

	case bool:
		return Bool(t)

	case rune: // also matches int32
		return Char(t)

	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Int(int64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return Int(int64(t))

	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)

	case string:
		return Text(t)

	case []byte:
		return Text(string(t))

	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = ValueOf(e)
		}

		return Sequence(elems...)

	case []Pair:
		return Mapping(t...)

	case yaml.MapSlice:
		pairs := make([]Pair, len(t))
		for i, item := range t {
			pairs[i] = Pair{
				Key: ValueOf(item.Key),
				Val: ValueOf(item.Value),
			}
		}

		return Mapping(pairs...)

	case yaml.MapItem:
		return Mapping(Pair{Key: ValueOf(t.Key), Val: ValueOf(t.Value)})
	}

	return reflectValueOf(reflect.ValueOf(v))
}

// reflectValueOf handles compound types not covered by the fast paths.
func reflectValueOf(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Unit()
		}

		return ValueOf(rv.Elem().Interface())

	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range rv.Len() {
			elems[i] = ValueOf(rv.Index(i).Interface())
		}

		return Sequence(elems...)

	case reflect.Map:
		return mappingOf(rv)

	case reflect.Struct:
		return recordOf(rv)

	default:
		// Opaque kinds (chan, func, complex) degrade to their
		// printed representation rather than failing.
		return Text(fmt.Sprint(rv.Interface()))
	}
}

// mappingOf converts a Go map into a Mapping sorted by key.
func mappingOf(rv reflect.Value) Value {
	pairs := make([]Pair, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, Pair{
			Key: ValueOf(iter.Key().Interface()),
			Val: ValueOf(iter.Value().Interface()),
		})
	}

	slices.SortFunc(pairs, func(a, b Pair) int {
		return strings.Compare(a.Key.keyString(), b.Key.keyString())
	})

	return Mapping(pairs...)
}

// recordOf converts a struct into a Record over its exported fields in
// declaration order.
func recordOf(rv reflect.Value) Value {
	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fields = append(fields, Field{
			Name: sf.Name,
			Val:  ValueOf(rv.Field(i).Interface()),
		})
	}

	return Record(fields...)
}
