package report

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/miu/derive"
)

// PrintTree writes an indented rendering of the derivation tree to w, one
// node per line, pre-order, indented by two spaces per level.
func PrintTree(w io.Writer, t *derive.Tree) {
	for _, node := range t.Collect() {
		indent := strings.Repeat("  ", node.Level)
		fmt.Fprintf(w, "%s├─ %s (level %d)\n", indent, node.Theorem, node.Level)
	}
}

// PrintLevels writes one line per level to w, ascending, each listing the
// theorems of that level in collection order.
func PrintLevels(w io.Writer, t *derive.Tree) {
	ByLevel(t).Each(func(level int, theorems []string) {
		fmt.Fprintf(w, "Level %d: %v\n", level, theorems)
	})
}
