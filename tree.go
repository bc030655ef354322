package arbor

import (
	"context"
	"fmt"
)

// A Tree owns the root of a decision graph and walks it to produce answers.
//
// The tree itself holds no state besides the root. Nodes reachable from the
// root must not be modified once the tree is in use.
type Tree[I, A any] struct {
	root Node[I, A]
}

// NewTree takes ownership of root. It panics if root is nil or holds a nil
// pointer.
func NewTree[I, A any](root Node[I, A]) *Tree[I, A] {
	if isNil(root) {
		panic("arbor: NewTree called with a nil root")
	}
	return &Tree[I, A]{root: root}
}

// Root returns the root node of the tree.
func (t *Tree[I, A]) Root() Node[I, A] {
	return t.root
}

// Decide walks the tree from the root, following each Continue decision until
// a node answers.
//
// There is no bound on the number of steps. If the decision graph contains a
// cycle that the input can follow, Decide never returns; use Eval to guard
// against that.
func (t *Tree[I, A]) Decide(input I) A {
	n := t.root
	for {
		d := n.Decide(input)
		if d.kind == answer {
			return d.answer
		}
		if d.kind != branch {
			panic(fmt.Sprintf("arbor: node %T returned an invalid decision", n))
		}
		n = d.next
	}
}

// Eval walks the tree like Decide, but stops with ErrMaxSteps once the walk
// has visited more nodes than the MaxSteps option allows, and with the
// context's error once ctx is done.
func (t *Tree[I, A]) Eval(ctx context.Context, input I, opts ...EvalOption) (A, error) {
	o := EvalOptions{
		MaxSteps: DefaultMaxSteps,
	}
	applyEvalOptions(&o, opts...)

	var zero A
	n := t.root
	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if o.MaxSteps > 0 && step > o.MaxSteps {
			return zero, fmt.Errorf("%w: %d", ErrMaxSteps, o.MaxSteps)
		}
		d := n.Decide(input)
		switch d.kind {
		case answer:
			return d.answer, nil
		case branch:
			n = d.next
		default:
			return zero, fmt.Errorf("node %T at step %d: %w", n, step, ErrInvalidDecision)
		}
	}
}
