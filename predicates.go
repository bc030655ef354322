package arbor

type predicatedDecision[I, A any] struct {
	pred     Predicate[I]
	decision Decision[I, A]
}

// PredicateListNode holds an ordered list of predicates, each with its own
// decision, and a default decision.
//
// Predicates are tested in the order they were added. The decision of the
// first predicate that returns true is used and the remaining predicates are
// not called. If no predicate matches, the default decision is used.
type PredicateListNode[I, A any] struct {
	list []predicatedDecision[I, A]
	def  Decision[I, A]
}

// NewPredicateListNode returns an empty list node that falls back to def.
func NewPredicateListNode[I, A any](def Decision[I, A]) *PredicateListNode[I, A] {
	return &PredicateListNode[I, A]{def: def}
}

// AddDecision appends pred and its decision to the end of the list.
func (n *PredicateListNode[I, A]) AddDecision(pred Predicate[I], d Decision[I, A]) {
	n.list = append(n.list, predicatedDecision[I, A]{pred: pred, decision: d})
}

// AddAction appends pred with a decision that answers a.
func (n *PredicateListNode[I, A]) AddAction(pred Predicate[I], a A) {
	n.AddDecision(pred, Answer[I](a))
}

// AddNode appends pred with a decision that continues to child.
func (n *PredicateListNode[I, A]) AddNode(pred Predicate[I], child Node[I, A]) {
	n.AddDecision(pred, Continue(child))
}

// DefaultDecision returns the decision used when no predicate matches.
func (n *PredicateListNode[I, A]) DefaultDecision() Decision[I, A] {
	return n.def
}

// Len returns the number of predicates in the list.
func (n *PredicateListNode[I, A]) Len() int {
	return len(n.list)
}

// Decide implements Node.
func (n *PredicateListNode[I, A]) Decide(input I) Decision[I, A] {
	for i := range n.list {
		if n.list[i].pred(input) {
			return n.list[i].decision
		}
	}
	return n.def
}
