package miu

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "strings"

// Axiom is the single axiom of the MIU system.
const Axiom = "MI"

// --- Rewrite outcomes ------------------------------------------------------

// An Outcome is the result of applying a rewrite rule to a theorem string.
// It distinguishes three states: the rule did not match, the rule matched
// and produced a new string, or the rule matched and reproduced its input.
// The last state cannot occur with the standard MIU rules, but a general
// rule set may exhibit it, and collapsing it into "no match" would lose
// information. Clients therefore check Applied and Changed separately.
type Outcome struct {
	applied bool
	theorem string
}

// NoMatch signals that a rule is not applicable to its input.
func NoMatch() Outcome {
	return Outcome{}
}

// Rewritten wraps the string a rule produced.
func Rewritten(theorem string) Outcome {
	return Outcome{applied: true, theorem: theorem}
}

// Applied returns true if the rule matched, regardless of whether the
// rewritten string differs from the input.
func (o Outcome) Applied() bool {
	return o.applied
}

// Theorem returns the rewritten string. Valid only if Applied returns true.
func (o Outcome) Theorem() string {
	return o.theorem
}

// Changed returns true if the rule matched and produced a string different
// from the given input.
func (o Outcome) Changed(input string) bool {
	return o.applied && o.theorem != input
}

// --- Rules -----------------------------------------------------------------

// A Rule is a pure string-rewrite function, representing one legal
// derivation step of a post-production system. Implementations must be
// deterministic and free of side effects; a rule which panics on any input
// is considered broken.
type Rule interface {
	Name() string
	Rewrite(theorem string) Outcome
}

// RuleFunc adapts a plain rewrite function to the Rule interface.
type RuleFunc struct {
	name    string
	rewrite func(string) Outcome
}

// MakeRule wraps a rewrite function into a named rule.
func MakeRule(name string, rewrite func(string) Outcome) RuleFunc {
	return RuleFunc{name: name, rewrite: rewrite}
}

// Name returns the display name of the rule.
func (r RuleFunc) Name() string {
	return r.name
}

// Rewrite calls the wrapped rewrite function.
func (r RuleFunc) Rewrite(theorem string) Outcome {
	return r.rewrite(theorem)
}

// --- The MIU rule set ------------------------------------------------------

// StandardRules returns the four rules of the MIU system, in the order
// given by Hofstadter. Rule order determines sibling order in a derivation
// tree, never the set of derivable theorems, as the derivation engine tries
// every rule on every frontier theorem.
func StandardRules() []Rule {
	return []Rule{
		MakeRule("append-U", appendU),
		MakeRule("double-tail", doubleTail),
		MakeRule("contract-III", contractIII),
		MakeRule("drop-UU", dropUU),
	}
}

// Rule I: if the last letter is I, append U. (MI -> MIU)
func appendU(theorem string) Outcome {
	if !strings.HasSuffix(theorem, "I") {
		return NoMatch()
	}
	return Rewritten(theorem + "U")
}

// Rule II: from Mx, produce Mxx. (MIU -> MIUIU)
func doubleTail(theorem string) Outcome {
	if !strings.HasPrefix(theorem, "M") {
		return NoMatch()
	}
	return Rewritten(theorem + theorem[1:])
}

// Rule III: replace the leftmost occurrence of III with U. (MIII -> MU)
func contractIII(theorem string) Outcome {
	if !strings.Contains(theorem, "III") {
		return NoMatch()
	}
	return Rewritten(strings.Replace(theorem, "III", "U", 1))
}

// Rule IV: drop the leftmost occurrence of UU. (MUU -> M)
func dropUU(theorem string) Outcome {
	if !strings.Contains(theorem, "UU") {
		return NoMatch()
	}
	return Rewritten(strings.Replace(theorem, "UU", "", 1))
}
