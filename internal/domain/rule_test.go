package domain

import (
	"reflect"
	"testing"
)

func TestParseRuleSingleAntecedent(t *testing.T) {
	rule, ok := ParseRule("garlic", "ginger")
	if !ok {
		t.Fatal("expected rule to parse")
	}
	if !reflect.DeepEqual(rule.Antecedent, []string{"garlic"}) {
		t.Errorf("expected [garlic], got %v", rule.Antecedent)
	}
	if rule.Consequent != "ginger" {
		t.Errorf("expected ginger, got %s", rule.Consequent)
	}
}

func TestParseRuleCommaJoinedKey(t *testing.T) {
	rule, ok := ParseRule(" Garlic , Onion ", "Scallion")
	if !ok {
		t.Fatal("expected rule to parse")
	}

	// Tokens trimmed and lowercased, key order preserved
	if !reflect.DeepEqual(rule.Antecedent, []string{"garlic", "onion"}) {
		t.Errorf("expected [garlic onion], got %v", rule.Antecedent)
	}
	if rule.Consequent != "scallion" {
		t.Errorf("expected scallion, got %s", rule.Consequent)
	}
}

func TestParseRuleCollapsesDuplicateAntecedents(t *testing.T) {
	rule, ok := ParseRule("garlic,garlic,onion", "ginger")
	if !ok {
		t.Fatal("expected rule to parse")
	}
	if !reflect.DeepEqual(rule.Antecedent, []string{"garlic", "onion"}) {
		t.Errorf("expected [garlic onion], got %v", rule.Antecedent)
	}
}

func TestParseRuleMalformed(t *testing.T) {
	cases := [][2]string{
		{"", "ginger"},
		{" , , ", "ginger"},
		{"garlic", ""},
		{"garlic", "   "},
	}

	for _, c := range cases {
		if _, ok := ParseRule(c[0], c[1]); ok {
			t.Errorf("ParseRule(%q, %q): expected malformed", c[0], c[1])
		}
	}
}
