package decider

import (
	"github.com/ezachrisen/arbor"
	"github.com/ezachrisen/arbor/container"
)

type containedBranch[I, A any] struct {
	c      container.Container[I]
	branch Branch[I, A]
}

// Contains returns a branch depending on whether the input is a member of one
// of its containers. It works like Predicates, using each container's
// Contains method as the predicate.
type Contains[I, A any] struct {
	list []containedBranch[I, A]
	def  Branch[I, A]
}

// NewContains returns an empty Contains decider with a default branch.
func NewContains[I, A any](def Branch[I, A]) *Contains[I, A] {
	return &Contains[I, A]{def: def}
}

// AddContainer appends a branch that is taken if c contains the input.
func (c *Contains[I, A]) AddContainer(con container.Container[I], b Branch[I, A]) {
	c.list = append(c.list, containedBranch[I, A]{c: con, branch: b})
}

// AddAnswer appends a branch answering a.
func (c *Contains[I, A]) AddAnswer(con container.Container[I], a A) {
	c.AddContainer(con, Answer[I](a))
}

// AddDecider appends a branch continuing to d.
func (c *Contains[I, A]) AddDecider(con container.Container[I], d Decider[I, A]) {
	c.AddContainer(con, To(d))
}

// Len returns the number of containers.
func (c *Contains[I, A]) Len() int {
	return len(c.list)
}

// Decide implements Decider.
func (c *Contains[I, A]) Decide(input I) arbor.Decision[I, A] {
	for i := range c.list {
		if c.list[i].c.Contains(input) {
			return c.list[i].branch.Decision()
		}
	}
	return c.def.Decision()
}
