package arbor

import "fmt"

type decisionKind uint8

const (
	invalid decisionKind = iota
	branch
	answer
)

// A Decision is the outcome of asking a single node what to do with an input.
// It either continues to another node, or it holds the final answer.
//
// Use Continue and Answer to create decisions. The zero Decision is neither;
// both accessors return an error for it and a Tree will panic if a node
// returns it.
type Decision[I, A any] struct {
	next   Node[I, A]
	answer A
	kind   decisionKind
}

// Continue returns a Decision that hands the input to the next node.
// Continue panics if next is nil or holds a nil pointer.
func Continue[I, A any](next Node[I, A]) Decision[I, A] {
	if isNil(next) {
		panic("arbor: Continue called with a nil node")
	}
	return Decision[I, A]{next: next, kind: branch}
}

// Answer returns a terminal Decision holding the answer.
func Answer[I, A any](a A) Decision[I, A] {
	return Decision[I, A]{answer: a, kind: answer}
}

// IsAnswer reports whether the decision holds a final answer.
func (d Decision[I, A]) IsAnswer() bool {
	return d.kind == answer
}

// IsBranch reports whether the decision continues to another node.
func (d Decision[I, A]) IsBranch() bool {
	return d.kind == branch
}

// Answer returns the answer held by the decision, or ErrDecisionIsNotAnAnswer.
func (d Decision[I, A]) Answer() (A, error) {
	if d.kind != answer {
		var zero A
		return zero, ErrDecisionIsNotAnAnswer
	}
	return d.answer, nil
}

// Next returns the node the decision continues to, or ErrDecisionIsNotABranch.
func (d Decision[I, A]) Next() (Node[I, A], error) {
	if d.kind != branch {
		return nil, ErrDecisionIsNotABranch
	}
	return d.next, nil
}

func (d Decision[I, A]) String() string {
	switch d.kind {
	case answer:
		return fmt.Sprintf("answer(%v)", d.answer)
	case branch:
		return fmt.Sprintf("continue(%T)", d.next)
	default:
		return "invalid"
	}
}
