package arbor

import "errors"

var (
	// ErrDecisionIsNotABranch is returned when the next node is requested from
	// a Decision that holds an answer.
	ErrDecisionIsNotABranch = errors.New("the decision is not a branch")

	// ErrDecisionIsNotAnAnswer is returned when the answer is requested from a
	// Decision that continues to another node.
	ErrDecisionIsNotAnAnswer = errors.New("the decision is not an answer")

	// ErrMaxSteps is returned by Eval when the walk visits more nodes than
	// allowed by the MaxSteps option. A tree that keeps returning this error
	// for every input most likely contains a cycle.
	ErrMaxSteps = errors.New("maximum number of traversal steps exceeded")

	// ErrInvalidDecision is returned by Eval when a node returns the zero
	// Decision.
	ErrInvalidDecision = errors.New("node returned an invalid decision")
)
