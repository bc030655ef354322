package arbor

import (
	"context"
	"sync/atomic"
)

// Vault provides lock-free, hot-replaceable access to a decision tree.
//
// Nodes must not change while goroutines are deciding with them. To change a
// tree that is in use, build a complete new root off to the side and publish
// it with Replace. Decisions already in progress finish on the tree they
// started with; new decisions see the new tree.
type Vault[I, A any] struct {
	tree atomic.Pointer[Tree[I, A]]
}

// NewVault creates a Vault holding a tree with the given root.
// It panics if root is nil.
func NewVault[I, A any](root Node[I, A]) *Vault[I, A] {
	v := &Vault[I, A]{}
	v.tree.Store(NewTree(root))
	return v
}

// Tree returns the current tree.
func (v *Vault[I, A]) Tree() *Tree[I, A] {
	return v.tree.Load()
}

// Replace publishes a tree with a new root and returns the tree it replaced.
// It panics if root is nil.
func (v *Vault[I, A]) Replace(root Node[I, A]) *Tree[I, A] {
	return v.tree.Swap(NewTree(root))
}

// Decide decides the input with the current tree. See Tree.Decide.
func (v *Vault[I, A]) Decide(input I) A {
	return v.tree.Load().Decide(input)
}

// Eval evaluates the input with the current tree. See Tree.Eval.
func (v *Vault[I, A]) Eval(ctx context.Context, input I, opts ...EvalOption) (A, error) {
	return v.tree.Load().Eval(ctx, input, opts...)
}
