package arbor_test

import (
	"fmt"

	"github.com/ezachrisen/arbor"
)

// -------------------------------------------------- CLASSES
// class is the answer type used throughout the tests. Every tree built here
// sorts integers into the same five classes.
type class int

const (
	lessThanNegativeTen class = iota
	lessThanZero
	zero
	greaterThanZero
	greaterThanTen
)

func (c class) String() string {
	switch c {
	case lessThanNegativeTen:
		return "LessThanNegativeTen"
	case lessThanZero:
		return "LessThanZero"
	case zero:
		return "Zero"
	case greaterThanZero:
		return "GreaterThanZero"
	case greaterThanTen:
		return "GreaterThanTen"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// expected holds the correct class for the probe inputs, including both
// sides of every threshold.
var expected = map[int]class{
	-50: lessThanNegativeTen,
	-11: lessThanNegativeTen,
	-10: lessThanZero,
	-1:  lessThanZero,
	0:   zero,
	1:   greaterThanZero,
	10:  greaterThanZero,
	11:  greaterThanTen,
	50:  greaterThanTen,
}

// -------------------------------------------------- TREES

// nestedBinary splits on zero first, then on the sign, then on magnitude.
func nestedBinary() arbor.Node[int, class] {
	neg := arbor.NewBinaryNode(func(n int) bool { return n < -10 },
		arbor.Answer[int](lessThanNegativeTen),
		arbor.Answer[int](lessThanZero))
	pos := arbor.NewBinaryNode(func(n int) bool { return n > 10 },
		arbor.Answer[int](greaterThanTen),
		arbor.Answer[int](greaterThanZero))
	sign := arbor.NewBinaryNode(func(n int) bool { return n < 0 },
		arbor.Continue[int, class](neg),
		arbor.Continue[int, class](pos))
	return arbor.NewBinaryNode(func(n int) bool { return n == 0 },
		arbor.Answer[int](zero),
		arbor.Continue[int, class](sign))
}

// predicateList tests the ranges in order and answers zero if none match.
func predicateList() *arbor.PredicateListNode[int, class] {
	l := arbor.NewPredicateListNode(arbor.Answer[int](zero))
	l.AddAction(func(n int) bool { return n < -10 }, lessThanNegativeTen)
	l.AddAction(func(n int) bool { return n < 0 }, lessThanZero)
	l.AddAction(func(n int) bool { return n > 10 }, greaterThanTen)
	l.AddAction(func(n int) bool { return n > 0 }, greaterThanZero)
	return l
}

// table answers zero by exact match and hands everything else to a predicate
// list.
func table() *arbor.MapNode[int, class] {
	t := arbor.NewMapNode(arbor.Continue[int, class](predicateList()))
	t.AddAction(0, zero)
	return t
}

// bitTree returns a complete binary tree of the given depth. The node at
// level b tests bit b of the input, so the answer for a non-negative input n
// is n modulo 2^depth.
func bitTree(depth int) arbor.Decision[int, int] {
	var build func(bit, prefix int) arbor.Decision[int, int]
	build = func(bit, prefix int) arbor.Decision[int, int] {
		if bit == depth {
			return arbor.Answer[int](prefix)
		}
		b := bit
		return arbor.Continue[int, int](arbor.NewBinaryNode(func(n int) bool { return n>>b&1 == 1 },
			build(bit+1, prefix|1<<b),
			build(bit+1, prefix)))
	}
	return build(0, 0)
}

// chain returns a linear tree of n nodes. The last node answers the number
// of nodes visited.
func chain(n int) arbor.Node[int, int] {
	var build func(i int) arbor.Node[int, int]
	build = func(i int) arbor.Node[int, int] {
		return arbor.NodeFunc[int, int](func(int) arbor.Decision[int, int] {
			if i == n {
				return arbor.Answer[int](i)
			}
			return arbor.Continue(build(i + 1))
		})
	}
	return build(1)
}

// loop returns a node that continues to itself forever.
func loop() arbor.Node[int, int] {
	var f arbor.NodeFunc[int, int]
	f = func(int) arbor.Decision[int, int] {
		return arbor.Continue[int, int](f)
	}
	return f
}

// -------------------------------------------------- COMPARISON

// classifyAll decides every expected input with the tree.
func classifyAll(t *arbor.Tree[int, class]) map[int]class {
	got := make(map[int]class, len(expected))
	for n := range expected {
		got[n] = t.Decide(n)
	}
	return got
}

// match compares the classes decided by a tree to the expected classes.
func match(result map[int]class, want map[int]class) error {
	for k, v := range result {
		ev, ok := want[k]
		if !ok {
			return fmt.Errorf("received a class for input %d ( %v ); none was expected", k, v)
		}
		if v != ev {
			return fmt.Errorf("class mismatch: input %d: got %v, wanted %v", k, v, ev)
		}
	}
	for k := range want {
		if _, ok := result[k]; !ok {
			return fmt.Errorf("expected a class for input %d: none found", k)
		}
	}
	return nil
}
