package domain

import "strings"

// AssociationRule proposes a single complementary ingredient (the consequent)
// whenever every ingredient in its antecedent is present. Rule tables are
// ordered; earlier rules win when a suggestion cap applies.
type AssociationRule struct {
	Antecedent []string `json:"antecedent"`
	Consequent string   `json:"consequent"`
}

// ParseRule builds a rule from the loader's serialized form: a comma-joined
// antecedent key and a single consequent ingredient. Tokens are trimmed and
// lowercased, duplicates within the antecedent are collapsed. ok is false for
// malformed entries (empty antecedent or consequent after normalization).
func ParseRule(antecedentKey, consequent string) (AssociationRule, bool) {
	var antecedent []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(antecedentKey, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		antecedent = append(antecedent, part)
	}

	consequent = strings.ToLower(strings.TrimSpace(consequent))
	if len(antecedent) == 0 || consequent == "" {
		return AssociationRule{}, false
	}

	return AssociationRule{Antecedent: antecedent, Consequent: consequent}, true
}

// CatalogSnapshot is the fully materialized recipe catalog and rule table,
// loaded once and treated as read-only for the duration of a request.
type CatalogSnapshot struct {
	Recipes []Recipe          `json:"recipes"`
	Rules   []AssociationRule `json:"rules"`
}
