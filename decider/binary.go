package decider

import "github.com/ezachrisen/arbor"

// Binary takes a predicate and two branches: one to use if the predicate
// returns true and one to use if it returns false.
type Binary[I, A any] struct {
	pred    arbor.Predicate[I]
	onTrue  Branch[I, A]
	onFalse Branch[I, A]
}

// NewBinary returns a Binary decider.
func NewBinary[I, A any](pred arbor.Predicate[I], onTrue, onFalse Branch[I, A]) *Binary[I, A] {
	return &Binary[I, A]{
		pred:    pred,
		onTrue:  onTrue,
		onFalse: onFalse,
	}
}

// Decide implements Decider.
func (b *Binary[I, A]) Decide(input I) arbor.Decision[I, A] {
	if b.pred(input) {
		return b.onTrue.Decision()
	}
	return b.onFalse.Decision()
}
