package derive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/npillmayer/miu"
)

// Generate derives every theorem reachable from axiom within maxDepth rule
// applications and returns the derivation tree. Expansion is breadth-first:
// every rule is applied to every frontier theorem, in rule order, and each
// string discovered for the first time becomes a child of the theorem which
// produced it. Strings already seen anywhere in the tree are skipped, so
// every theorem occurs exactly once.
//
// The axiom may be any string; rules simply fail to match on input outside
// their alphabet. An empty or nil rule set is legal and yields a tree
// consisting of the root alone. A negative maxDepth is a caller bug and
// returns an error.
//
// The result is deterministic for fixed (axiom, rule order, maxDepth).
func Generate(axiom string, rules []miu.Rule, maxDepth int) (*Tree, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("derivation depth must be non-negative, is %d", maxDepth)
	}
	root := &Node{Theorem: axiom, Level: 0}
	tree := &Tree{root: root, axiom: axiom, size: 1}
	seen := hashset.New(axiom)
	queue := doublylinkedlist.New() // FIFO of frontier nodes
	queue.Add(root)
	for !queue.Empty() {
		front, _ := queue.Get(0)
		node := front.(*Node)
		if node.Level >= maxDepth {
			// BFS processes in depth order: nothing shallower is left queued
			break
		}
		queue.Remove(0)
		for _, rule := range rules {
			outcome := rule.Rewrite(node.Theorem)
			if !outcome.Applied() || seen.Contains(outcome.Theorem()) {
				continue
			}
			child := &Node{Theorem: outcome.Theorem(), Level: node.Level + 1}
			node.addChild(child)
			seen.Add(child.Theorem)
			queue.Add(child)
			tree.size++
			if child.Level > tree.depth {
				tree.depth = child.Level
			}
			tracer().Debugf("%s --%s--> %s", node.Theorem, rule.Name(), child.Theorem)
		}
	}
	tracer().Infof("derived %d theorems from '%s' within depth %d", tree.size,
		axiom, maxDepth)
	return tree, nil
}
