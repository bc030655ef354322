// Package learning defines the boundary between decision trees and the
// algorithms that build them from labelled examples.
//
// A learning algorithm consumes a DataSet and produces the root node of a
// tree. The only thing required of the node is that it implements
// arbor.Node; the inputs of a learned tree are the Attributes of an example.
package learning

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ezachrisen/arbor"
)

// ErrNoRoot is returned by Learn when a learner produces no root node.
var ErrNoRoot = errors.New("learner returned no root node")

// Learner builds the root of a decision tree from a data set.
type Learner[L, V, R any] interface {
	Learn(ds *DataSet[L, V, R]) (arbor.Node[Attributes[L, V], R], error)
}

// LearnerFunc adapts an ordinary function to the Learner interface.
type LearnerFunc[L, V, R any] func(ds *DataSet[L, V, R]) (arbor.Node[Attributes[L, V], R], error)

// Learn calls f(ds).
func (f LearnerFunc[L, V, R]) Learn(ds *DataSet[L, V, R]) (arbor.Node[Attributes[L, V], R], error) {
	return f(ds)
}

// Learn runs the learner on the data set and returns the resulting tree.
func Learn[L, V, R any](l Learner[L, V, R], ds *DataSet[L, V, R]) (*arbor.Tree[Attributes[L, V], R], error) {
	root, err := l.Learn(ds)
	if err != nil {
		return nil, fmt.Errorf("learning from %d examples: %w", ds.Len(), err)
	}
	if root == nil || nilPointer(root) {
		return nil, ErrNoRoot
	}
	return arbor.NewTree(root), nil
}

// nilPointer reports whether v holds a nil pointer or function.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
