// Package container defines the membership test used by the decider.Contains
// decider, and implementations of it for ranges, hash and ordered sets and
// maps, and linear sequences.
//
// Every implementation answers a single question: is this value a member?
package container

import (
	"cmp"
	"slices"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Container is implemented by any collection-like value that can test a value
// for membership.
type Container[T any] interface {
	Contains(value T) bool
}

// Func adapts an ordinary function to the Container interface.
type Func[T any] func(value T) bool

// Contains calls f(value).
func (f Func[T]) Contains(value T) bool {
	return f(value)
}

// Set is a hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains implements Container.
func (s Set[T]) Contains(value T) bool {
	_, ok := s[value]
	return ok
}

// Keys tests membership against the keys of a map.
type Keys[K comparable, V any] map[K]V

// Contains implements Container.
func (k Keys[K, V]) Contains(value K) bool {
	_, ok := k[value]
	return ok
}

// Slice is a linear sequence, searched front to back.
type Slice[T comparable] []T

// Contains implements Container.
func (s Slice[T]) Contains(value T) bool {
	return slices.Contains(s, value)
}

// Comparator returns a gods comparator for an ordered type. The comparator
// panics if it is given values of any other type.
func Comparator[T constraints.Ordered]() utils.Comparator {
	return func(a, b interface{}) int {
		return cmp.Compare(a.(T), b.(T))
	}
}
