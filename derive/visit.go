package derive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Collect returns all nodes of the tree in pre-order: a node before its
// children, children in stored (rule) order. The tree is immutable after
// generation, so repeated calls return identical sequences.
//
// The traversal is iterative with an explicit stack; call-stack depth would
// otherwise grow with the derivation depth.
func (t *Tree) Collect() []*Node {
	if t == nil || t.root == nil {
		return nil
	}
	nodes := make([]*Node, 0, t.size)
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, node)
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
	return nodes
}

// Listener is a type for walking a derivation tree top-down. Enter is
// called before a node's children are visited; returning false prunes the
// walk below the node, and Exit is then not called for it. Exit is called
// after all children have been visited.
type Listener interface {
	Enter(n *Node) bool
	Exit(n *Node)
}

// TopDown walks the tree in pre-order, calling the listener for every node.
// Listeners must not modify the tree.
func (t *Tree) TopDown(l Listener) {
	if t == nil || t.root == nil {
		return
	}
	walk(t.root, l)
}

func walk(n *Node, l Listener) {
	if !l.Enter(n) {
		return
	}
	for _, child := range n.children {
		walk(child, l)
	}
	l.Exit(n)
}
