package arbor

import "reflect"

// Node is the interface implemented by every decision point in a tree.
//
// Decide inspects the input and returns either the final answer or the next
// node to consult. Decide must not modify the node or the input; a built
// tree can then be shared by any number of goroutines.
type Node[I, A any] interface {
	Decide(input I) Decision[I, A]
}

// NodeFunc adapts an ordinary function to the Node interface.
type NodeFunc[I, A any] func(input I) Decision[I, A]

// Decide calls f(input).
func (f NodeFunc[I, A]) Decide(input I) Decision[I, A] {
	return f(input)
}

// Predicate is a test on an input. Predicates must be total: they return
// false rather than fail.
type Predicate[I any] func(input I) bool

// isNil reports whether n is nil, or an interface holding a nil pointer,
// map, slice, channel or function.
func isNil(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
