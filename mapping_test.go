package arbor_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/ezachrisen/arbor"
)

func TestMapNode(t *testing.T) {
	is := is.New(t)

	m := arbor.NewMapNode(arbor.Answer[string]("unknown"))
	is.Equal(m.Len(), 0)

	m.AddAction("red", "stop")
	m.AddAction("green", "go")
	is.Equal(m.Len(), 2)

	tree := arbor.NewTree[string, string](m)
	is.Equal(tree.Decide("red"), "stop")
	is.Equal(tree.Decide("green"), "go")
	is.Equal(tree.Decide("blue"), "unknown") // no entry: default

	// adding an existing key replaces its decision
	m.AddAction("red", "halt")
	is.Equal(m.Len(), 2)
	is.Equal(tree.Decide("red"), "halt")

	_, ok := m.GetDecision("blue")
	is.True(!ok)
	d, ok := m.GetDecision("green")
	is.True(ok)
	a, err := d.Answer()
	is.NoErr(err)
	is.Equal(a, "go")

	def, err := m.DefaultDecision().Answer()
	is.NoErr(err)
	is.Equal(def, "unknown")
}

func TestMapNode_AddNode(t *testing.T) {
	is := is.New(t)

	amber := arbor.NewBinaryNode(func(s string) bool { return s == "amber" },
		arbor.Answer[string]("slow"),
		arbor.Answer[string]("unknown"))
	m := arbor.NewMapNode(arbor.Continue[string, string](amber))
	m.AddAction("red", "stop")

	tree := arbor.NewTree[string, string](m)
	is.Equal(tree.Decide("amber"), "slow")
	is.Equal(tree.Decide("red"), "stop")
	is.Equal(tree.Decide("pink"), "unknown")

	m.AddNode("yellow", arbor.NodeFunc[string, string](func(string) arbor.Decision[string, string] {
		return arbor.Answer[string]("caution")
	}))
	is.Equal(tree.Decide("yellow"), "caution")
}

func TestOrderedMapNode(t *testing.T) {
	is := is.New(t)

	m := arbor.NewOrderedMapNode(arbor.Answer[float64]("other"))
	m.AddAction(2.5, "b")
	m.AddAction(-1, "a")
	m.AddAction(10, "c")
	m.AddAction(2.5, "B")

	is.Equal(m.Len(), 3)
	is.Equal(m.Keys(), []float64{-1, 2.5, 10})

	tree := arbor.NewTree[float64, string](m)
	is.Equal(tree.Decide(2.5), "B")
	is.Equal(tree.Decide(-1), "a")
	is.Equal(tree.Decide(3), "other")
}

func TestOrderedMapNodeWith(t *testing.T) {
	is := is.New(t)

	fold := func(a, b any) int {
		return strings.Compare(strings.ToLower(a.(string)), strings.ToLower(b.(string)))
	}
	m := arbor.NewOrderedMapNodeWith(fold, arbor.Answer[string](false))
	m.AddAction("yes", true)
	m.AddAction("Y", true)

	tree := arbor.NewTree[string, bool](m)
	is.True(tree.Decide("YES"))
	is.True(tree.Decide("y"))
	is.True(!tree.Decide("no"))
	is.Equal(m.Keys(), []string{"Y", "yes"})
}
