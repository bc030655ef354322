package arbor

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"

	"github.com/ezachrisen/arbor/container"
)

// Mapping is implemented by nodes that look up the decision for an input in
// a table of exact matches, falling back to a default decision.
type Mapping[I, A any] interface {
	Node[I, A]

	// AddDecision stores the decision for key, replacing any decision
	// previously stored for the same key.
	AddDecision(key I, d Decision[I, A])

	// AddAction stores a decision that answers a for key.
	AddAction(key I, a A)

	// AddNode stores a decision that continues to child for key.
	AddNode(key I, child Node[I, A])

	// GetDecision returns the decision stored for input, if any.
	GetDecision(input I) (Decision[I, A], bool)

	// DefaultDecision returns the decision used for inputs with no entry.
	DefaultDecision() Decision[I, A]

	// Len returns the number of entries in the table.
	Len() int
}

// decideMapping is the shared Decide implementation of the table nodes.
func decideMapping[I, A any](m Mapping[I, A], input I) Decision[I, A] {
	if d, ok := m.GetDecision(input); ok {
		return d
	}
	return m.DefaultDecision()
}

// MapNode is a hash table node. Lookups are by equality of the input with the
// stored keys.
type MapNode[I comparable, A any] struct {
	table map[I]Decision[I, A]
	def   Decision[I, A]
}

var _ Mapping[string, int] = (*MapNode[string, int])(nil)

// NewMapNode returns an empty table node that falls back to def.
func NewMapNode[I comparable, A any](def Decision[I, A]) *MapNode[I, A] {
	return &MapNode[I, A]{
		table: make(map[I]Decision[I, A]),
		def:   def,
	}
}

// AddDecision implements Mapping. An existing decision for key is replaced.
func (n *MapNode[I, A]) AddDecision(key I, d Decision[I, A]) {
	n.table[key] = d
}

// AddAction implements Mapping.
func (n *MapNode[I, A]) AddAction(key I, a A) {
	n.AddDecision(key, Answer[I](a))
}

// AddNode implements Mapping.
func (n *MapNode[I, A]) AddNode(key I, child Node[I, A]) {
	n.AddDecision(key, Continue(child))
}

// GetDecision implements Mapping.
func (n *MapNode[I, A]) GetDecision(input I) (Decision[I, A], bool) {
	d, ok := n.table[input]
	return d, ok
}

// DefaultDecision implements Mapping.
func (n *MapNode[I, A]) DefaultDecision() Decision[I, A] {
	return n.def
}

// Len implements Mapping.
func (n *MapNode[I, A]) Len() int {
	return len(n.table)
}

// Decide implements Node.
func (n *MapNode[I, A]) Decide(input I) Decision[I, A] {
	return decideMapping[I, A](n, input)
}

// OrderedMapNode is a table node whose keys are kept in a red-black tree,
// ordered by a comparator. Use it for keys that are not comparable with ==,
// or when the keys must be listed in order.
type OrderedMapNode[I, A any] struct {
	table *treemap.Map
	def   Decision[I, A]
}

var _ Mapping[string, int] = (*OrderedMapNode[string, int])(nil)

// NewOrderedMapNode returns an empty ordered table node for keys with a
// natural order, falling back to def.
func NewOrderedMapNode[I constraints.Ordered, A any](def Decision[I, A]) *OrderedMapNode[I, A] {
	return NewOrderedMapNodeWith[I, A](container.Comparator[I](), def)
}

// NewOrderedMapNodeWith returns an empty ordered table node using cmp to
// order and match keys. cmp is called with values of type I only.
func NewOrderedMapNodeWith[I, A any](cmp utils.Comparator, def Decision[I, A]) *OrderedMapNode[I, A] {
	return &OrderedMapNode[I, A]{
		table: treemap.NewWith(cmp),
		def:   def,
	}
}

// AddDecision implements Mapping. An existing decision for key is replaced.
func (n *OrderedMapNode[I, A]) AddDecision(key I, d Decision[I, A]) {
	n.table.Put(key, d)
}

// AddAction implements Mapping.
func (n *OrderedMapNode[I, A]) AddAction(key I, a A) {
	n.AddDecision(key, Answer[I](a))
}

// AddNode implements Mapping.
func (n *OrderedMapNode[I, A]) AddNode(key I, child Node[I, A]) {
	n.AddDecision(key, Continue(child))
}

// GetDecision implements Mapping.
func (n *OrderedMapNode[I, A]) GetDecision(input I) (Decision[I, A], bool) {
	v, ok := n.table.Get(input)
	if !ok {
		return Decision[I, A]{}, false
	}
	return v.(Decision[I, A]), true
}

// DefaultDecision implements Mapping.
func (n *OrderedMapNode[I, A]) DefaultDecision() Decision[I, A] {
	return n.def
}

// Len implements Mapping.
func (n *OrderedMapNode[I, A]) Len() int {
	return n.table.Size()
}

// Keys returns the keys of the table in ascending order.
func (n *OrderedMapNode[I, A]) Keys() []I {
	raw := n.table.Keys()
	keys := make([]I, len(raw))
	for i, k := range raw {
		keys[i] = k.(I)
	}
	return keys
}

// Decide implements Node.
func (n *OrderedMapNode[I, A]) Decide(input I) Decision[I, A] {
	return decideMapping[I, A](n, input)
}
