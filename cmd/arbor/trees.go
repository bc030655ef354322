package main

import (
	"fmt"

	"github.com/ezachrisen/arbor"
	"github.com/ezachrisen/arbor/cel"
	"github.com/ezachrisen/arbor/container"
	"github.com/ezachrisen/arbor/decider"
	"github.com/ezachrisen/arbor/schema"
)

// Class is the answer every demo tree gives for an integer.
type Class int

const (
	LessThanNegativeTen Class = iota
	LessThanZero
	Zero
	GreaterThanZero
	GreaterThanTen
)

func (c Class) String() string {
	switch c {
	case LessThanNegativeTen:
		return "LessThanNegativeTen"
	case LessThanZero:
		return "LessThanZero"
	case Zero:
		return "Zero"
	case GreaterThanZero:
		return "GreaterThanZero"
	case GreaterThanTen:
		return "GreaterThanTen"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// A strategy is one way of building the same classification.
type strategy struct {
	name   string
	decide func(n int) Class
}

// strategies builds every demo tree. The order is the column order of the
// classify output.
func strategies() []strategy {
	celTree := arbor.NewTree[map[string]any, Class](celNode())
	return []strategy{
		{name: "binary-nodes", decide: arbor.NewTree[int, Class](binaryNodes()).Decide},
		{name: "table", decide: arbor.NewTree[int, Class](tableNode()).Decide},
		{name: "binary-deciders", decide: binaryDeciders().Resolve},
		{name: "predicates", decide: predicatesDecider().Resolve},
		{name: "contains", decide: containsDecider().Resolve},
		{name: "cel", decide: func(n int) Class {
			return celTree.Decide(map[string]any{"n": n})
		}},
	}
}

func findStrategy(name string) (strategy, error) {
	names := []string{}
	for _, s := range strategies() {
		if s.name == name {
			return s, nil
		}
		names = append(names, s.name)
	}
	return strategy{}, fmt.Errorf("unknown strategy %q (want one of %v)", name, names)
}

// binaryNodes nests static binary splits.
func binaryNodes() arbor.Node[int, Class] {
	gtTen := arbor.NewBinaryNode(func(n int) bool { return n > 10 },
		arbor.Answer[int](GreaterThanTen), arbor.Answer[int](GreaterThanZero))
	gtZero := arbor.NewBinaryNode(func(n int) bool { return n > 0 },
		arbor.Continue[int, Class](gtTen), arbor.Answer[int](Zero))
	ltNegTen := arbor.NewBinaryNode(func(n int) bool { return n < -10 },
		arbor.Answer[int](LessThanNegativeTen), arbor.Answer[int](LessThanZero))
	return arbor.NewBinaryNode(func(n int) bool { return n >= 0 },
		arbor.Continue[int, Class](gtZero), arbor.Continue[int, Class](ltNegTen))
}

// tableNode answers Zero from an exact-match table and sends every other
// value to a predicate list.
func tableNode() arbor.Node[int, Class] {
	signs := arbor.NewPredicateListNode(arbor.Answer[int](GreaterThanTen))
	signs.AddAction(func(n int) bool { return n < -10 }, LessThanNegativeTen)
	signs.AddAction(func(n int) bool { return n < 0 }, LessThanZero)
	signs.AddAction(func(n int) bool { return n <= 10 }, GreaterThanZero)

	table := arbor.NewMapNode(arbor.Continue[int, Class](signs))
	table.AddAction(0, Zero)
	return table
}

func binaryDeciders() *decider.Handle[int, Class] {
	gtTen := decider.NewBinary(func(n int) bool { return n > 10 },
		decider.Answer[int](GreaterThanTen), decider.Answer[int](GreaterThanZero))
	gtZero := decider.NewBinary(func(n int) bool { return n > 0 },
		decider.To[int, Class](gtTen), decider.Answer[int](Zero))
	ltNegTen := decider.NewBinary(func(n int) bool { return n < -10 },
		decider.Answer[int](LessThanNegativeTen), decider.Answer[int](LessThanZero))
	return decider.New[int, Class](decider.NewBinary(func(n int) bool { return n >= 0 },
		decider.To[int, Class](gtZero), decider.To[int, Class](ltNegTen)))
}

func predicatesDecider() *decider.Handle[int, Class] {
	p := decider.NewPredicates(decider.Answer[int](Zero))
	p.AddAnswer(func(n int) bool { return n < -10 }, LessThanNegativeTen)
	p.AddAnswer(func(n int) bool { return n > 10 }, GreaterThanTen)
	p.AddAnswer(func(n int) bool { return n < 0 }, LessThanZero)
	p.AddAnswer(func(n int) bool { return n > 0 }, GreaterThanZero)
	return decider.New[int, Class](p)
}

func containsDecider() *decider.Handle[int, Class] {
	c := decider.NewContains(decider.Answer[int](Zero))
	c.AddAnswer(container.Between(-10, 0), LessThanZero)
	c.AddAnswer(container.Closed(1, 10), GreaterThanZero)
	c.AddAnswer(container.From(11), GreaterThanTen)
	c.AddAnswer(container.Below(-10), LessThanNegativeTen)
	return decider.New[int, Class](c)
}

// celNode classifies {"n": <int>} with CEL expressions.
func celNode() arbor.Node[map[string]any, Class] {
	s := schema.Schema{
		ID:       "integer",
		Elements: []schema.DataElement{{Name: "n", Type: schema.Int{}}},
	}
	p := arbor.NewPredicateListNode(arbor.Answer[map[string]any](Zero))
	p.AddAction(cel.MustPredicate(`n < -10`, s), LessThanNegativeTen)
	p.AddAction(cel.MustPredicate(`n > 10`, s), GreaterThanTen)
	p.AddAction(cel.MustPredicate(`n < 0`, s), LessThanZero)
	p.AddAction(cel.MustPredicate(`n > 0`, s), GreaterThanZero)
	return p
}
