package engine

import (
	"fmt"
	"strings"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
)

// suggest scans the rule table in order and collects complementary-ingredient
// nudges for one recipe. A rule fires when its whole antecedent was matched by
// the user and its consequent is neither part of the recipe nor already
// suggested. Greedy first-fit: scanning stops at the suggestion cap, so rule
// order decides which suggestions surface.
func (e *Engine) suggest(matched, recipeIngredients map[string]struct{}, rules []domain.AssociationRule) []string {
	suggestions := []string{}
	suggested := make(map[string]struct{})

	for _, rule := range rules {
		if len(rule.Antecedent) == 0 || rule.Consequent == "" {
			continue
		}
		if !isSubset(rule.Antecedent, matched) {
			continue
		}
		if _, ok := recipeIngredients[rule.Consequent]; ok {
			continue
		}
		if _, ok := suggested[rule.Consequent]; ok {
			continue
		}

		suggestions = append(suggestions, fmt.Sprintf(
			"%s is commonly used with %s; you may also want to get %s as a complement",
			strings.Join(rule.Antecedent, ", "), rule.Consequent, rule.Consequent,
		))
		suggested[rule.Consequent] = struct{}{}

		if len(suggestions) >= e.maxSuggestions {
			break
		}
	}
	return suggestions
}

func isSubset(items []string, set map[string]struct{}) bool {
	for _, item := range items {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}
