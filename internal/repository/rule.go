package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
)

// ListRules loads the association-rule table in its stored order. Rule order
// is significant: it decides which suggestions surface when a cap applies.
// Malformed rows are skipped so one bad rule never blocks a recommendation
// pass.
func (r *Repository) ListRules(ctx context.Context) ([]domain.AssociationRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT antecedent, consequent
		FROM association_rules
		ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query association rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.AssociationRule
	for rows.Next() {
		var antecedentKey, consequent string
		if err := rows.Scan(&antecedentKey, &consequent); err != nil {
			return nil, fmt.Errorf("scan association rule: %w", err)
		}

		rule, ok := domain.ParseRule(antecedentKey, consequent)
		if !ok {
			log.Printf("[repository] skipping malformed rule %q -> %q", antecedentKey, consequent)
			continue
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over association rules: %w", err)
	}
	return rules, nil
}
