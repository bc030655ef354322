// Package decider provides deciders: decision points that are held behind a
// shared Handle so that different kinds of deciders can be mixed freely in
// one decision graph and composed at run time.
//
// A decider owns its branches. A Branch either holds an answer, which is
// duplicated every time the branch is taken, or a Handle to another decider,
// which is borrowed and never duplicated.
//
// Deciders use the same Decision vocabulary as the nodes in package arbor,
// so a Handle can be the root of an arbor.Tree or a child of a static node.
package decider

import (
	"context"

	"github.com/ezachrisen/arbor"
)

// Decider is the single capability every decider implements: given an input,
// answer or name the next decider to consult.
type Decider[I, A any] interface {
	Decide(input I) arbor.Decision[I, A]
}

// Handle is a shared reference to a decider. Handles are what branches point
// to; a graph of handles is walked with Resolve.
type Handle[I, A any] struct {
	d Decider[I, A]
}

// New wraps d in a Handle. It panics if d is nil.
func New[I, A any](d Decider[I, A]) *Handle[I, A] {
	if d == nil {
		panic("decider: New called with a nil decider")
	}
	return &Handle[I, A]{d: d}
}

// Decide asks the wrapped decider for a single decision.
func (h *Handle[I, A]) Decide(input I) arbor.Decision[I, A] {
	return h.d.Decide(input)
}

// Decider returns the wrapped decider.
func (h *Handle[I, A]) Decider() Decider[I, A] {
	return h.d
}

// Resolve runs the decision, going through any child deciders until one of
// them answers. Like arbor.Tree.Decide, Resolve does not detect cycles.
func (h *Handle[I, A]) Resolve(input I) A {
	return arbor.NewTree[I, A](h).Decide(input)
}

// Eval is the bounded form of Resolve. See arbor.Tree.Eval.
func (h *Handle[I, A]) Eval(ctx context.Context, input I, opts ...arbor.EvalOption) (A, error) {
	return arbor.NewTree[I, A](h).Eval(ctx, input, opts...)
}

// Cloner is implemented by answer types that need more than a plain copy to
// be duplicated.
type Cloner[A any] interface {
	Clone() A
}

// Branch is a branch owned by a decider: either an answer or a handle to the
// next decider.
type Branch[I, A any] struct {
	next   *Handle[I, A]
	answer A
	final  bool
}

// Answer returns a branch that answers a.
func Answer[I, A any](a A) Branch[I, A] {
	return Branch[I, A]{answer: a, final: true}
}

// Continue returns a branch that continues to the decider held by h.
// It panics if h is nil.
func Continue[I, A any](h *Handle[I, A]) Branch[I, A] {
	if h == nil {
		panic("decider: Continue called with a nil handle")
	}
	return Branch[I, A]{next: h}
}

// To returns a branch that continues to d, wrapping it in a new Handle.
func To[I, A any](d Decider[I, A]) Branch[I, A] {
	return Continue(New(d))
}

// IsAnswer reports whether the branch holds an answer.
func (b Branch[I, A]) IsAnswer() bool {
	return b.final
}

// IsBranch reports whether the branch continues to another decider.
func (b Branch[I, A]) IsBranch() bool {
	return !b.final && b.next != nil
}

// Decision converts the branch to the decision handed to the caller. An answer
// is duplicated: through Clone if the answer implements Cloner, otherwise by
// copying the value. A handle is passed on as is.
//
// The zero Branch is neither an answer nor a continuation; it converts to the
// zero arbor.Decision, which a tree reports as invalid.
func (b Branch[I, A]) Decision() arbor.Decision[I, A] {
	if !b.final {
		if b.next == nil {
			return arbor.Decision[I, A]{}
		}
		return arbor.Continue[I, A](b.next)
	}
	if c, ok := any(b.answer).(Cloner[A]); ok {
		return arbor.Answer[I](c.Clone())
	}
	return arbor.Answer[I](b.answer)
}
