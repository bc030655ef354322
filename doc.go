// Package arbor classifies or routes an input value by walking a tree of
// decision points until a terminal answer is reached.
//
// Each point in the tree is a Node. Given the input, a node returns a
// Decision: either an Answer, which ends the walk, or a Continue naming the
// next node to consult. The Tree driver starts at the root and follows
// Continue decisions until it reaches an Answer.
//
// Typical use is as follows:
//
//  1. Build the leaves first: static nodes (BinaryNode, MapNode,
//     OrderedMapNode, PredicateListNode) or dynamic deciders from the
//     decider package
//  2. Compose them into a root node
//  3. Hand the root to NewTree
//  4. Call Decide or Eval for each input
//
// Static nodes store pre-resolved decisions and return them as they are.
// Deciders in the decider package own their branches and produce a fresh
// decision on every call. Both speak the same Decision vocabulary, so a
// decider can be a child of a static node and the other way around.
//
// # Tree Ownership and Modification
//
// A tree must be fully built before it is shared between goroutines. After
// that, nodes are read-only and any number of goroutines may call Decide
// concurrently. To change a tree that is in use, build a complete new root
// off to the side and publish it with a Vault.
//
// # Cycles
//
// Nothing prevents a node from continuing to one of its ancestors. Decide
// does not bound the walk and never returns on a cyclic graph. Use Eval,
// which stops after MaxSteps steps or when its context is done, whenever the
// tree is built from data you do not control.
package arbor
