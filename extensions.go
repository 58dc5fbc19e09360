package problem

import "reflect"

// Extensions holds process-local values keyed by their type, at most one value
// per type. They travel with a HandlerError through middleware and are never
// part of a Problem.
//
// Stored values may be read from other goroutines once the error has been
// handed off, so they should be immutable or otherwise safe for concurrent use.
// Extensions itself does no locking.
type Extensions struct {
	m map[reflect.Type]any
}

// Set stores v under its dynamic type, replacing any previous value of that
// type. A nil v is ignored.
func (x *Extensions) Set(v any) {
	if v == nil {
		return
	}
	x.put(reflect.TypeOf(v), v)
}

// Len returns the number of stored values.
func (x *Extensions) Len() int {
	return len(x.m)
}

// Clear removes every value.
func (x *Extensions) Clear() {
	x.m = nil
}

// Clone returns a shallow copy.
func (x *Extensions) Clone() Extensions {
	if len(x.m) == 0 {
		return Extensions{}
	}
	out := make(map[reflect.Type]any, len(x.m))
	for k, v := range x.m {
		out[k] = v
	}
	return Extensions{m: out}
}

func (x *Extensions) put(t reflect.Type, v any) (any, bool) {
	if x.m == nil {
		x.m = make(map[reflect.Type]any)
	}
	prev, ok := x.m[t]
	x.m[t] = v
	return prev, ok
}

// InsertExtension stores v under type T and returns the value it replaced.
func InsertExtension[T any](x *Extensions, v T) (T, bool) {
	prev, ok := x.put(reflect.TypeFor[T](), v)
	if !ok {
		var zero T
		return zero, false
	}
	out, _ := prev.(T)
	return out, true
}

// GetExtension returns the value stored under type T.
//
// Example:
//
//	id, ok := problem.GetExtension[RequestID](herr.Extensions())
func GetExtension[T any](x *Extensions) (T, bool) {
	v, ok := x.m[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// RemoveExtension deletes the value stored under type T and returns it.
func RemoveExtension[T any](x *Extensions) (T, bool) {
	out, ok := GetExtension[T](x)
	if ok {
		delete(x.m, reflect.TypeFor[T]())
	}
	return out, ok
}
