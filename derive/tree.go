package derive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "fmt"

// Node is a single theorem within a derivation tree. Theorem and Level are
// set once by the engine and never change afterwards. The parent link is a
// non-owning back-reference used for path reconstruction; ownership flows
// strictly top-down through the children slice.
type Node struct {
	Theorem  string // the derived string
	Level    int    // number of rule applications separating it from the axiom
	parent   *Node
	children []*Node
}

// Parent returns the node this node was derived from, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the nodes directly derived from n, in rule order.
// Callers must not modify the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// IsLeaf returns true if no theorem has been derived from n.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// addChild attaches a newly derived theorem and sets its back-reference.
func (n *Node) addChild(child *Node) {
	n.children = append(n.children, child)
	child.parent = n
}

func (n *Node) String() string {
	return fmt.Sprintf("Theorem('%s', level=%d)", n.Theorem, n.Level)
}

// PathToRoot returns the derivation path from the tree's root down to n,
// both endpoints inclusive. Each entry is obtained from its predecessor by
// exactly one rule application.
func (n *Node) PathToRoot() []string {
	var path []string
	for current := n; current != nil; current = current.parent {
		path = append(path, current.Theorem)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Tree is the result of a derivation run. It holds the root node plus some
// bookkeeping gathered during generation.
type Tree struct {
	root  *Node
	axiom string
	size  int
	depth int
}

// Root returns the axiom node of the tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Axiom returns the string the derivation started from.
func (t *Tree) Axiom() string {
	return t.axiom
}

// Size returns the number of unique theorems in the tree, the axiom
// included.
func (t *Tree) Size() int {
	return t.size
}

// Depth returns the deepest level present in the tree. It may be smaller
// than the bound given to Generate if the frontier ran dry early.
func (t *Tree) Depth() int {
	return t.depth
}
