package engine

import (
	"math"
	"sort"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
)

// DefaultMaxSuggestions caps smart suggestions per recipe.
const DefaultMaxSuggestions = 2

type Options struct {
	// MaxSuggestions overrides the per-recipe suggestion cap. Zero or
	// negative means DefaultMaxSuggestions.
	MaxSuggestions int
}

type Engine struct {
	maxSuggestions int
}

func New(opts Options) *Engine {
	max := opts.MaxSuggestions
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	return &Engine{maxSuggestions: max}
}

type RecommendInput struct {
	UserIngredients map[string]struct{}
	Catalog         []domain.Recipe
	Rules           []domain.AssociationRule
	TopN            int
}

// Recommend scores every catalog recipe by ingredient overlap and returns the
// top N matches, each annotated with missing ingredients and smart
// suggestions. The score is the fraction of the recipe's ingredients the user
// already has; recipes sharing no ingredient with the user are excluded.
// Inputs are treated as read-only, so concurrent calls are safe.
func (e *Engine) Recommend(input RecommendInput) []domain.Recommendation {
	if input.TopN <= 0 {
		return nil
	}

	recs := make([]domain.Recommendation, 0, len(input.Catalog))
	for _, recipe := range input.Catalog {
		ingredients := recipe.IngredientSet()
		if len(ingredients) == 0 {
			continue
		}

		matched := make(map[string]struct{})
		missing := []string{}
		for ing := range ingredients {
			if _, ok := input.UserIngredients[ing]; ok {
				matched[ing] = struct{}{}
			} else {
				missing = append(missing, ing)
			}
		}

		// A candidate must share at least one ingredient with the user.
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched)) / float64(len(ingredients))
		sort.Strings(missing)

		recs = append(recs, domain.Recommendation{
			Title:              recipe.Title,
			SourceURL:          recipe.SourceURL,
			MatchScorePercent:  roundPercent(score),
			MissingIngredients: missing,
			PersonaCluster:     recipe.PersonaCluster,
			SmartSuggestions:   e.suggest(matched, ingredients, input.Rules),
		})
	}

	// Stable: equal scores keep catalog order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScorePercent > recs[j].MatchScorePercent
	})

	if len(recs) > input.TopN {
		recs = recs[:input.TopN]
	}
	return recs
}

// roundPercent converts a 0-1 score to a percentage with 2 decimal places.
func roundPercent(score float64) float64 {
	return math.Round(score*10000) / 100
}
