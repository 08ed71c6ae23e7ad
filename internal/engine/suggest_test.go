package engine

import (
	"strings"
	"testing"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
)

func TestSuggestFires(t *testing.T) {
	eng := New(Options{})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic", "rice"),
		Catalog: []domain.Recipe{
			{Title: "Garlic Onion Dish", Ingredients: []string{"garlic", "onion"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic"}, Consequent: "ginger"},
		},
		TopN: 5,
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	suggestions := results[0].SmartSuggestions
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if !strings.Contains(suggestions[0], "garlic") || !strings.Contains(suggestions[0], "ginger") {
		t.Errorf("suggestion should reference garlic and ginger: %q", suggestions[0])
	}
}

func TestSuggestSuppressedWhenConsequentInRecipe(t *testing.T) {
	eng := New(Options{})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic", "rice"),
		Catalog: []domain.Recipe{
			{Title: "Ginger Garlic Dish", Ingredients: []string{"garlic", "onion", "ginger"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic"}, Consequent: "ginger"},
		},
		TopN: 5,
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if len(results[0].SmartSuggestions) != 0 {
		t.Errorf("suggestion should be suppressed, got %v", results[0].SmartSuggestions)
	}
}

func TestSuggestRequiresFullAntecedentMatch(t *testing.T) {
	eng := New(Options{})

	// User matched garlic only: the garlic+shallot rule must not fire even
	// though shallot is in the recipe.
	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic"),
		Catalog: []domain.Recipe{
			{Title: "Shallot Dish", Ingredients: []string{"garlic", "shallot"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic", "shallot"}, Consequent: "candlenut"},
		},
		TopN: 5,
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if len(results[0].SmartSuggestions) != 0 {
		t.Errorf("rule should not fire on partial antecedent, got %v", results[0].SmartSuggestions)
	}
}

func TestSuggestCapAndOrder(t *testing.T) {
	eng := New(Options{})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic", "onion", "rice"),
		Catalog: []domain.Recipe{
			{Title: "Plain Rice", Ingredients: []string{"garlic", "onion", "rice"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic"}, Consequent: "ginger"},
			{Antecedent: []string{"onion"}, Consequent: "scallion"},
			{Antecedent: []string{"rice"}, Consequent: "egg"},
		},
		TopN: 5,
	})

	suggestions := results[0].SmartSuggestions
	if len(suggestions) != 2 {
		t.Fatalf("expected cap of 2 suggestions, got %d", len(suggestions))
	}

	// Earlier rules win
	if !strings.Contains(suggestions[0], "ginger") {
		t.Errorf("first suggestion should come from the first rule: %q", suggestions[0])
	}
	if !strings.Contains(suggestions[1], "scallion") {
		t.Errorf("second suggestion should come from the second rule: %q", suggestions[1])
	}
}

func TestSuggestConfigurableCap(t *testing.T) {
	eng := New(Options{MaxSuggestions: 3})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic", "onion", "rice"),
		Catalog: []domain.Recipe{
			{Title: "Plain Rice", Ingredients: []string{"garlic", "onion", "rice"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic"}, Consequent: "ginger"},
			{Antecedent: []string{"onion"}, Consequent: "scallion"},
			{Antecedent: []string{"rice"}, Consequent: "egg"},
		},
		TopN: 5,
	})

	if len(results[0].SmartSuggestions) != 3 {
		t.Errorf("expected 3 suggestions with raised cap, got %d", len(results[0].SmartSuggestions))
	}
}

func TestSuggestDeduplicatesConsequent(t *testing.T) {
	eng := New(Options{})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic", "onion"),
		Catalog: []domain.Recipe{
			{Title: "Garlic Onion Dish", Ingredients: []string{"garlic", "onion"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic"}, Consequent: "ginger"},
			{Antecedent: []string{"onion"}, Consequent: "ginger"},
			{Antecedent: []string{"onion"}, Consequent: "scallion"},
		},
		TopN: 5,
	})

	suggestions := results[0].SmartSuggestions
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if !strings.Contains(suggestions[1], "scallion") {
		t.Errorf("duplicate consequent should be skipped, got %q", suggestions[1])
	}
}

func TestSuggestSkipsMalformedRule(t *testing.T) {
	eng := New(Options{})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic"),
		Catalog: []domain.Recipe{
			{Title: "Garlic Dish", Ingredients: []string{"garlic", "onion"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: nil, Consequent: "ginger"},
			{Antecedent: []string{"garlic"}, Consequent: ""},
			{Antecedent: []string{"garlic"}, Consequent: "lime"},
		},
		TopN: 5,
	})

	suggestions := results[0].SmartSuggestions
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if !strings.Contains(suggestions[0], "lime") {
		t.Errorf("only the well-formed rule should fire: %q", suggestions[0])
	}
}

func TestSuggestTemplate(t *testing.T) {
	eng := New(Options{})

	results := eng.Recommend(RecommendInput{
		UserIngredients: userSet("garlic", "shallot"),
		Catalog: []domain.Recipe{
			{Title: "Base", Ingredients: []string{"garlic", "shallot"}},
		},
		Rules: []domain.AssociationRule{
			{Antecedent: []string{"garlic", "shallot"}, Consequent: "candlenut"},
		},
		TopN: 5,
	})

	want := "garlic, shallot is commonly used with candlenut; you may also want to get candlenut as a complement"
	if got := results[0].SmartSuggestions[0]; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
