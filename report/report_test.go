package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/miu"
	"github.com/npillmayer/miu/derive"
)

func makeTree(t *testing.T, depth int) *derive.Tree {
	tree, err := derive.Generate(miu.Axiom, miu.StandardRules(), depth)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestByLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "miu.report")
	defer teardown()
	//
	levels := ByLevel(makeTree(t, 2))
	if got := levels.At(0); len(got) != 1 || got[0] != "MI" {
		t.Errorf("Level 0 is %v, expected [MI]", got)
	}
	if got := strings.Join(levels.At(1), " "); got != "MIU MII" {
		t.Errorf("Level 1 is [%s], expected [MIU MII]", got)
	}
	if got := strings.Join(levels.At(2), " "); got != "MIUIU MIIU MIIII" {
		t.Errorf("Level 2 is [%s], expected [MIUIU MIIU MIIII]", got)
	}
	if levels.At(3) != nil {
		t.Errorf("Expected no theorems at level 3")
	}
	if levels.MaxLevel() != 2 {
		t.Errorf("MaxLevel is %d, expected 2", levels.MaxLevel())
	}
}

func TestEachAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "miu.report")
	defer teardown()
	//
	tree := makeTree(t, 4)
	levels := ByLevel(tree)
	previous := -1
	total := 0
	levels.Each(func(level int, theorems []string) {
		if level <= previous {
			t.Errorf("Level %d reported after level %d", level, previous)
		}
		previous = level
		total += len(theorems)
	})
	if total != tree.Size() {
		t.Errorf("Each visited %d theorems, tree has %d", total, tree.Size())
	}
	if levels.Count() != tree.Size() {
		t.Errorf("Count is %d, tree size is %d", levels.Count(), tree.Size())
	}
}

func TestSignatureDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "miu.report")
	defer teardown()
	//
	sig1, err := Signature(makeTree(t, 4))
	if err != nil {
		t.Error(err)
	}
	sig2, err := Signature(makeTree(t, 4))
	if err != nil {
		t.Error(err)
	}
	if sig1 != sig2 {
		t.Errorf("Identical runs have signatures %s and %s", sig1, sig2)
	}
	sig3, err := Signature(makeTree(t, 3))
	if err != nil {
		t.Error(err)
	}
	if sig1 == sig3 {
		t.Errorf("Runs of different depth share signature %s", sig1)
	}
}

func TestPrintTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "miu.report")
	defer teardown()
	//
	var buf bytes.Buffer
	PrintTree(&buf, makeTree(t, 1))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	expected := []string{
		"├─ MI (level 0)",
		"  ├─ MIU (level 1)",
		"  ├─ MII (level 1)",
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, have %d:\n%s", len(expected), len(lines), buf.String())
	}
	for i, line := range expected {
		if lines[i] != line {
			t.Errorf("Line %d is '%s', expected '%s'", i, lines[i], line)
		}
	}
}

func TestPrintLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "miu.report")
	defer teardown()
	//
	var buf bytes.Buffer
	PrintLevels(&buf, makeTree(t, 1))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	expected := []string{
		"Level 0: [MI]",
		"Level 1: [MIU MII]",
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, have %d:\n%s", len(expected), len(lines), buf.String())
	}
	for i, line := range expected {
		if lines[i] != line {
			t.Errorf("Line %d is '%s', expected '%s'", i, lines[i], line)
		}
	}
}
