package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
)

// ListRecipes loads the full recipe catalog. Ingredient tokens are trimmed,
// lowercased, and deduplicated here so the engine always sees canonical sets.
func (r *Repository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, source_url, ingredients, persona_cluster, created_at
		FROM recipes
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		var raw []string
		err := rows.Scan(&rec.ID, &rec.Title, &rec.SourceURL, &raw, &rec.PersonaCluster, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		rec.Ingredients = canonicalIngredients(raw)
		recipes = append(recipes, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over recipes: %w", err)
	}
	return recipes, nil
}

// canonicalIngredients normalizes stored tokens and collapses duplicates,
// preserving first-seen order.
func canonicalIngredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, ing := range raw {
		ing = strings.ToLower(strings.TrimSpace(ing))
		if ing == "" {
			continue
		}
		if _, ok := seen[ing]; ok {
			continue
		}
		seen[ing] = struct{}{}
		out = append(out, ing)
	}
	return out
}
