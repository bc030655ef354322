package container

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// This file wraps the gods collections in typed containers. The gods
// collections store interface{} values; the wrappers only ever put values of
// type T into them.

// TreeSet is an ordered set backed by a red-black tree.
type TreeSet[T any] struct {
	set *treeset.Set
}

// NewTreeSet returns an ordered set holding values.
func NewTreeSet[T constraints.Ordered](values ...T) TreeSet[T] {
	return NewTreeSetWith(Comparator[T](), values...)
}

// NewTreeSetWith returns an ordered set holding values, ordered by cmp.
func NewTreeSetWith[T any](cmp utils.Comparator, values ...T) TreeSet[T] {
	s := TreeSet[T]{set: treeset.NewWith(cmp)}
	s.Add(values...)
	return s
}

// Add inserts values into the set.
func (s TreeSet[T]) Add(values ...T) {
	for _, v := range values {
		s.set.Add(v)
	}
}

// Contains implements Container.
func (s TreeSet[T]) Contains(value T) bool {
	return s.set.Contains(value)
}

// Len returns the number of values in the set.
func (s TreeSet[T]) Len() int {
	return s.set.Size()
}

// TreeMap is an ordered map backed by a red-black tree. As a container it
// tests membership against its keys.
type TreeMap[K, V any] struct {
	m *treemap.Map
}

// NewTreeMap returns an empty ordered map.
func NewTreeMap[K constraints.Ordered, V any]() TreeMap[K, V] {
	return NewTreeMapWith[K, V](Comparator[K]())
}

// NewTreeMapWith returns an empty ordered map whose keys are ordered by cmp.
func NewTreeMapWith[K, V any](cmp utils.Comparator) TreeMap[K, V] {
	return TreeMap[K, V]{m: treemap.NewWith(cmp)}
}

// Put stores value under key.
func (t TreeMap[K, V]) Put(key K, value V) {
	t.m.Put(key, value)
}

// Get returns the value stored under key.
func (t TreeMap[K, V]) Get(key K) (V, bool) {
	v, ok := t.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Contains implements Container.
func (t TreeMap[K, V]) Contains(key K) bool {
	_, ok := t.m.Get(key)
	return ok
}

// Len returns the number of keys in the map.
func (t TreeMap[K, V]) Len() int {
	return t.m.Size()
}

// LinkedList is a doubly linked list, searched front to back.
type LinkedList[T comparable] struct {
	list *doublylinkedlist.List
}

// NewLinkedList returns a linked list holding values in order.
func NewLinkedList[T comparable](values ...T) LinkedList[T] {
	l := LinkedList[T]{list: doublylinkedlist.New()}
	l.Append(values...)
	return l
}

// Append adds values to the end of the list.
func (l LinkedList[T]) Append(values ...T) {
	for _, v := range values {
		l.list.Add(v)
	}
}

// Contains implements Container.
func (l LinkedList[T]) Contains(value T) bool {
	return l.list.Contains(value)
}

// ArrayList is a growable array, searched front to back.
type ArrayList[T comparable] struct {
	list *arraylist.List
}

// NewArrayList returns an array list holding values in order.
func NewArrayList[T comparable](values ...T) ArrayList[T] {
	l := ArrayList[T]{list: arraylist.New()}
	l.Append(values...)
	return l
}

// Append adds values to the end of the list.
func (l ArrayList[T]) Append(values ...T) {
	for _, v := range values {
		l.list.Add(v)
	}
}

// Contains implements Container.
func (l ArrayList[T]) Contains(value T) bool {
	return l.list.Contains(value)
}
