package decider

import "github.com/ezachrisen/arbor"

type predicatedBranch[I, A any] struct {
	pred   arbor.Predicate[I]
	branch Branch[I, A]
}

// Predicates returns a branch depending on a list of predicates. The
// predicates are tested in the order they were added and the branch of the
// first one that returns true is taken. If no predicate matches, the default
// branch is taken.
type Predicates[I, A any] struct {
	list []predicatedBranch[I, A]
	def  Branch[I, A]
}

// NewPredicates returns an empty Predicates decider with a default branch.
func NewPredicates[I, A any](def Branch[I, A]) *Predicates[I, A] {
	return &Predicates[I, A]{def: def}
}

// AddBranch appends a branch that is taken if pred returns true.
func (p *Predicates[I, A]) AddBranch(pred arbor.Predicate[I], b Branch[I, A]) {
	p.list = append(p.list, predicatedBranch[I, A]{pred: pred, branch: b})
}

// AddAnswer appends a branch answering a.
func (p *Predicates[I, A]) AddAnswer(pred arbor.Predicate[I], a A) {
	p.AddBranch(pred, Answer[I](a))
}

// AddDecider appends a branch continuing to d.
func (p *Predicates[I, A]) AddDecider(pred arbor.Predicate[I], d Decider[I, A]) {
	p.AddBranch(pred, To(d))
}

// Len returns the number of predicates.
func (p *Predicates[I, A]) Len() int {
	return len(p.list)
}

// Decide implements Decider.
func (p *Predicates[I, A]) Decide(input I) arbor.Decision[I, A] {
	for i := range p.list {
		if p.list[i].pred(input) {
			return p.list[i].branch.Decision()
		}
	}
	return p.def.Decision()
}
