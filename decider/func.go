package decider

import "github.com/ezachrisen/arbor"

// Func is about as basic a decider as you can get: it wraps a function that
// takes the input and returns the decision. Use it for logic that does not fit
// any of the other deciders.
type Func[I, A any] func(input I) arbor.Decision[I, A]

// Decide returns f(input) unchanged.
func (f Func[I, A]) Decide(input I) arbor.Decision[I, A] {
	return f(input)
}
