package report

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/miu/derive"
)

// Levels groups the theorems of a derivation tree by level.
type Levels struct {
	byLevel *treemap.Map // level ↦ *arraylist.List of theorem strings
}

// ByLevel buckets every theorem of the tree by its level. Within a bucket,
// theorems appear in collection (pre-order) order.
func ByLevel(t *derive.Tree) *Levels {
	byLevel := treemap.NewWith(utils.IntComparator)
	for _, node := range t.Collect() {
		var bucket *arraylist.List
		if b, ok := byLevel.Get(node.Level); ok {
			bucket = b.(*arraylist.List)
		} else {
			bucket = arraylist.New()
			byLevel.Put(node.Level, bucket)
		}
		bucket.Add(node.Theorem)
	}
	return &Levels{byLevel: byLevel}
}

// Each calls f once per level, in ascending level order, independently of
// the order in which levels were inserted.
func (l *Levels) Each(f func(level int, theorems []string)) {
	l.byLevel.Each(func(key interface{}, value interface{}) {
		f(key.(int), theoremSlice(value.(*arraylist.List)))
	})
}

// At returns the theorems at a given level, nil if the tree has none there.
func (l *Levels) At(level int) []string {
	if b, ok := l.byLevel.Get(level); ok {
		return theoremSlice(b.(*arraylist.List))
	}
	return nil
}

// Count returns the total number of theorems over all levels.
func (l *Levels) Count() int {
	total := 0
	l.byLevel.Each(func(_ interface{}, value interface{}) {
		total += value.(*arraylist.List).Size()
	})
	return total
}

// MaxLevel returns the deepest level present, -1 for an empty grouping.
func (l *Levels) MaxLevel() int {
	if l.byLevel.Empty() {
		return -1
	}
	key, _ := l.byLevel.Max()
	return key.(int)
}

func theoremSlice(bucket *arraylist.List) []string {
	theorems := make([]string, bucket.Size())
	for i, v := range bucket.Values() {
		theorems[i] = v.(string)
	}
	return theorems
}

// levelTable is the hashable shape of a derivation run.
type levelTable struct {
	Axiom  string
	Levels [][]string
}

// Signature returns a digest of the tree's theorems-by-level table. Two
// runs over identical (axiom, rule order, depth bound) produce identical
// signatures, making derivation runs comparable without walking two trees.
func Signature(t *derive.Tree) (string, error) {
	table := levelTable{Axiom: t.Axiom()}
	ByLevel(t).Each(func(_ int, theorems []string) {
		table.Levels = append(table.Levels, theorems)
	})
	signature, err := structhash.Hash(table, 1)
	if err != nil {
		return "", err
	}
	tracer().Debugf("signature of %d-theorem tree is %s", t.Size(), signature)
	return signature, nil
}
