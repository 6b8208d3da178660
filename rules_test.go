package miu

import "testing"

func TestAppendU(t *testing.T) {
	appendU := StandardRules()[0]
	cases := []struct {
		in, out string
		applies bool
	}{
		{"MI", "MIU", true},
		{"MII", "MIIU", true},
		{"I", "IU", true},
		{"MU", "", false},
		{"MIUI", "MIUIU", true},
		{"", "", false},
	}
	for _, c := range cases {
		outcome := appendU.Rewrite(c.in)
		if outcome.Applied() != c.applies {
			t.Errorf("append-U('%s'): applied=%v, expected %v", c.in, outcome.Applied(), c.applies)
		}
		if c.applies && outcome.Theorem() != c.out {
			t.Errorf("append-U('%s') = '%s', expected '%s'", c.in, outcome.Theorem(), c.out)
		}
	}
}

func TestDoubleTail(t *testing.T) {
	double := StandardRules()[1]
	cases := []struct {
		in, out string
		applies bool
	}{
		{"MU", "MUU", true},
		{"MI", "MII", true},
		{"MIU", "MIUIU", true},
		{"M", "M", true}, // empty tail doubles to itself
		{"IM", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		outcome := double.Rewrite(c.in)
		if outcome.Applied() != c.applies {
			t.Errorf("double-tail('%s'): applied=%v, expected %v", c.in, outcome.Applied(), c.applies)
		}
		if c.applies && outcome.Theorem() != c.out {
			t.Errorf("double-tail('%s') = '%s', expected '%s'", c.in, outcome.Theorem(), c.out)
		}
	}
}

func TestContractIII(t *testing.T) {
	contract := StandardRules()[2]
	cases := []struct {
		in, out string
		applies bool
	}{
		{"MIII", "MU", true},
		{"MIIII", "MUI", true},       // leftmost match only, remainder kept
		{"MIIIUIII", "MUUIII", true}, // second occurrence untouched
		{"MII", "", false},
		{"UMIIIM", "UMUM", true},
	}
	for _, c := range cases {
		outcome := contract.Rewrite(c.in)
		if outcome.Applied() != c.applies {
			t.Errorf("contract-III('%s'): applied=%v, expected %v", c.in, outcome.Applied(), c.applies)
		}
		if c.applies && outcome.Theorem() != c.out {
			t.Errorf("contract-III('%s') = '%s', expected '%s'", c.in, outcome.Theorem(), c.out)
		}
	}
}

func TestDropUU(t *testing.T) {
	drop := StandardRules()[3]
	cases := []struct {
		in, out string
		applies bool
	}{
		{"MUU", "M", true},
		{"MUUUU", "MUU", true}, // first UU only, no re-scan of the remainder
		{"MU", "", false},
		{"UUM", "M", true},
		{"", "", false},
	}
	for _, c := range cases {
		outcome := drop.Rewrite(c.in)
		if outcome.Applied() != c.applies {
			t.Errorf("drop-UU('%s'): applied=%v, expected %v", c.in, outcome.Applied(), c.applies)
		}
		if c.applies && outcome.Theorem() != c.out {
			t.Errorf("drop-UU('%s') = '%s', expected '%s'", c.in, outcome.Theorem(), c.out)
		}
	}
}

func TestOutcomeStates(t *testing.T) {
	if NoMatch().Applied() {
		t.Errorf("NoMatch reports itself as applied")
	}
	identical := Rewritten("MI")
	if !identical.Applied() {
		t.Errorf("Rewritten('MI') reports itself as not applied")
	}
	if identical.Changed("MI") {
		t.Errorf("Rewritten('MI') applied to 'MI' reports a change")
	}
	if !identical.Changed("MU") {
		t.Errorf("Rewritten('MI') applied to 'MU' reports no change")
	}
}

func TestRuleNames(t *testing.T) {
	names := []string{"append-U", "double-tail", "contract-III", "drop-UU"}
	for i, rule := range StandardRules() {
		if rule.Name() != names[i] {
			t.Errorf("rule %d is named '%s', expected '%s'", i, rule.Name(), names[i])
		}
	}
}
