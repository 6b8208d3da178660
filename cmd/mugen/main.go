package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/miu"
	"github.com/npillmayer/miu/derive"
	"github.com/npillmayer/miu/report"
	"github.com/npillmayer/miu/scan"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() runs the MIU demonstration driver. Without -repl it performs a
// single derivation run from the axiom and prints count, tree, levels and
// sample paths. With -repl it starts an interactive CLI where users may
// derive, inspect paths and apply single rules to strings of their choice.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	depth := flag.Int("depth", 4, "Maximum derivation depth")
	axiom := flag.String("axiom", miu.Axiom, "Axiom to derive from")
	interactive := flag.Bool("repl", false, "Start interactive mode")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("MIU — bounded theorem enumeration")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up alphabet checking
	tokenizer, err := scan.NewTokenizer()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	if err := tokenizer.Check(*axiom); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if !*interactive {
		if err := demo(*axiom, *depth); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("mugen> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		axiom:     *axiom,
		rules:     miu.StandardRules(),
		repl:      repl,
		tokenizer: tokenizer,
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

// demo performs one derivation run and prints everything the original MU
// puzzle walkthrough shows: total count, tree structure, theorems grouped
// by level, and derivation paths for the first three theorems of level 2
// or deeper, in collection order.
func demo(axiom string, depth int) error {
	tree, err := derive.Generate(axiom, miu.StandardRules(), depth)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("Total unique theorems generated: %d", tree.Size()))
	fmt.Println()
	pterm.Info.Println("Tree structure:")
	report.PrintTree(os.Stdout, tree)
	fmt.Println()
	pterm.Info.Println("Theorems by level:")
	report.PrintLevels(os.Stdout, tree)
	fmt.Println()
	pterm.Info.Println("Sample derivation paths:")
	printed := 0
	for _, node := range tree.Collect() {
		if node.Level < 2 {
			continue
		}
		fmt.Printf("Path to '%s': %s\n", node.Theorem,
			strings.Join(node.PathToRoot(), " -> "))
		if printed++; printed == 3 {
			break
		}
	}
	return nil
}

// Intp is our interpreter object
type Intp struct {
	axiom     string
	rules     []miu.Rule
	repl      *readline.Instance
	tokenizer *scan.Tokenizer
	tree      *derive.Tree
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		args := strings.Fields(line)
		quit, err := intp.Execute(args[0], args[1:])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single REPL command.
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case "quit", "bye":
		return true, nil
	case "help":
		intp.help()
	case "rules":
		for i, rule := range intp.rules {
			pterm.Info.Println(fmt.Sprintf("rule %d: %s", i, rule.Name()))
		}
	case "gen":
		depth := 4
		if len(args) > 0 {
			d, err := strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("not a depth bound: '%s'", args[0])
			}
			depth = d
		}
		tree, err := derive.Generate(intp.axiom, intp.rules, depth)
		if err != nil {
			return false, err
		}
		intp.tree = tree
		pterm.Info.Println(fmt.Sprintf("%d theorems within depth %d",
			tree.Size(), depth))
	case "tree":
		if intp.tree == nil {
			return false, noTreeYet()
		}
		report.PrintTree(os.Stdout, intp.tree)
	case "levels":
		if intp.tree == nil {
			return false, noTreeYet()
		}
		report.PrintLevels(os.Stdout, intp.tree)
	case "sig":
		if intp.tree == nil {
			return false, noTreeYet()
		}
		signature, err := report.Signature(intp.tree)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(signature)
	case "path":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: path <theorem>")
		}
		if intp.tree == nil {
			return false, noTreeYet()
		}
		return false, intp.printPath(args[0])
	case "apply":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: apply <rule#> <string>")
		}
		return false, intp.applyRule(args[0], args[1])
	default:
		return false, fmt.Errorf("unknown command: '%s', try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.Info.Println("gen [depth]            derive from the axiom")
	pterm.Info.Println("tree                   print the derivation tree")
	pterm.Info.Println("levels                 print theorems grouped by level")
	pterm.Info.Println("path <theorem>         print the derivation path of a theorem")
	pterm.Info.Println("apply <rule#> <string> apply a single rule to a string")
	pterm.Info.Println("rules                  list the rules")
	pterm.Info.Println("sig                    print the signature of the current tree")
	pterm.Info.Println("quit                   leave")
}

func (intp *Intp) printPath(theorem string) error {
	if err := intp.tokenizer.Check(theorem); err != nil {
		return err
	}
	for _, node := range intp.tree.Collect() {
		if node.Theorem == theorem {
			pterm.Info.Println(strings.Join(node.PathToRoot(), " -> "))
			return nil
		}
	}
	return fmt.Errorf("'%s' has not been derived; deepen the bound?", theorem)
}

func (intp *Intp) applyRule(index string, theorem string) error {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(intp.rules) {
		return fmt.Errorf("not a rule number: '%s'", index)
	}
	if err := intp.tokenizer.Check(theorem); err != nil {
		return err
	}
	rule := intp.rules[i]
	outcome := rule.Rewrite(theorem)
	if !outcome.Applied() {
		pterm.Info.Println(fmt.Sprintf("%s does not apply to '%s'", rule.Name(), theorem))
		return nil
	}
	pterm.Info.Println(fmt.Sprintf("%s --%s--> %s", theorem, rule.Name(),
		outcome.Theorem()))
	return nil
}

func noTreeYet() error {
	return fmt.Errorf("no derivation yet, use 'gen <depth>'")
}
