package learning

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"

	"github.com/ezachrisen/arbor/container"
)

// Attributes is a bag of labelled values describing one example.
//
// Attribute returns the value for label. Asking for a label the bag does not
// have is a programming error and panics: a data set and its labels must be
// well formed before they are used.
type Attributes[L, V any] interface {
	Attribute(label L) V
}

// Map is an Attributes backed by a Go map.
type Map[L comparable, V any] map[L]V

// Attribute implements Attributes. It panics if label is missing.
func (m Map[L, V]) Attribute(label L) V {
	v, ok := m[label]
	if !ok {
		panic(fmt.Sprintf("learning: no attribute with label %v", label))
	}
	return v
}

// OrderedMap is an Attributes backed by an ordered map.
type OrderedMap[L, V any] struct {
	m *treemap.Map
}

// NewOrderedMap returns an empty OrderedMap for labels with a natural order.
func NewOrderedMap[L constraints.Ordered, V any]() OrderedMap[L, V] {
	return NewOrderedMapWith[L, V](container.Comparator[L]())
}

// NewOrderedMapWith returns an empty OrderedMap whose labels are ordered by cmp.
func NewOrderedMapWith[L, V any](cmp utils.Comparator) OrderedMap[L, V] {
	return OrderedMap[L, V]{m: treemap.NewWith(cmp)}
}

// Set stores the value for label.
func (o OrderedMap[L, V]) Set(label L, value V) OrderedMap[L, V] {
	o.m.Put(label, value)
	return o
}

// Attribute implements Attributes. It panics if label is missing.
func (o OrderedMap[L, V]) Attribute(label L) V {
	v, ok := o.m.Get(label)
	if !ok {
		panic(fmt.Sprintf("learning: no attribute with label %v", label))
	}
	return v.(V)
}
