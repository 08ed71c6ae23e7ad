package domain

import "time"

type Recipe struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	SourceURL      string    `json:"source_url"`
	Ingredients    []string  `json:"ingredients"`
	PersonaCluster string    `json:"persona_cluster"`
	CreatedAt      time.Time `json:"created_at"`
}

// IngredientSet returns the recipe's ingredients as a set. Duplicate tokens
// are collapsed; the loader normalizes tokens before the recipe is built.
func (r Recipe) IngredientSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		set[ing] = struct{}{}
	}
	return set
}
