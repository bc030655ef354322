package arbor

// BinaryNode splits the input on a single predicate. Both branches are
// resolved when the node is built.
type BinaryNode[I, A any] struct {
	cond    Predicate[I]
	onTrue  Decision[I, A]
	onFalse Decision[I, A]
}

// NewBinaryNode returns a node that decides onTrue when cond(input) is true,
// and onFalse otherwise.
func NewBinaryNode[I, A any](cond Predicate[I], onTrue, onFalse Decision[I, A]) *BinaryNode[I, A] {
	return &BinaryNode[I, A]{
		cond:    cond,
		onTrue:  onTrue,
		onFalse: onFalse,
	}
}

// Decide implements Node.
func (n *BinaryNode[I, A]) Decide(input I) Decision[I, A] {
	if n.cond(input) {
		return n.onTrue
	}
	return n.onFalse
}
