package container

import "golang.org/x/exp/constraints"

// Range holds the values v with Start <= v < End.
type Range[T constraints.Ordered] struct {
	Start, End T
}

// Between returns the half-open range [start, end).
func Between[T constraints.Ordered](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Contains implements Container.
func (r Range[T]) Contains(v T) bool {
	return r.Start <= v && v < r.End
}

// RangeInclusive holds the values v with Start <= v <= End.
type RangeInclusive[T constraints.Ordered] struct {
	Start, End T
}

// Closed returns the closed range [start, end].
func Closed[T constraints.Ordered](start, end T) RangeInclusive[T] {
	return RangeInclusive[T]{Start: start, End: end}
}

// Contains implements Container.
func (r RangeInclusive[T]) Contains(v T) bool {
	return r.Start <= v && v <= r.End
}

// OpenRange holds the values v with Start < v < End.
type OpenRange[T constraints.Ordered] struct {
	Start, End T
}

// Open returns the open range (start, end).
func Open[T constraints.Ordered](start, end T) OpenRange[T] {
	return OpenRange[T]{Start: start, End: end}
}

// Contains implements Container.
func (r OpenRange[T]) Contains(v T) bool {
	return r.Start < v && v < r.End
}

// RangeFrom holds the values v with Start <= v.
type RangeFrom[T constraints.Ordered] struct {
	Start T
}

// From returns the range [start, ∞).
func From[T constraints.Ordered](start T) RangeFrom[T] {
	return RangeFrom[T]{Start: start}
}

// Contains implements Container.
func (r RangeFrom[T]) Contains(v T) bool {
	return r.Start <= v
}

// RangeTo holds the values v with v < End.
type RangeTo[T constraints.Ordered] struct {
	End T
}

// Below returns the range (-∞, end).
func Below[T constraints.Ordered](end T) RangeTo[T] {
	return RangeTo[T]{End: end}
}

// Contains implements Container.
func (r RangeTo[T]) Contains(v T) bool {
	return v < r.End
}

// RangeToInclusive holds the values v with v <= End.
type RangeToInclusive[T constraints.Ordered] struct {
	End T
}

// AtMost returns the range (-∞, end].
func AtMost[T constraints.Ordered](end T) RangeToInclusive[T] {
	return RangeToInclusive[T]{End: end}
}

// Contains implements Container.
func (r RangeToInclusive[T]) Contains(v T) bool {
	return v <= r.End
}

// RangeFull holds every value.
type RangeFull[T constraints.Ordered] struct{}

// All returns the unbounded range.
func All[T constraints.Ordered]() RangeFull[T] {
	return RangeFull[T]{}
}

// Contains implements Container.
func (RangeFull[T]) Contains(T) bool {
	return true
}
