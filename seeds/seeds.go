package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE association_rules, recipes RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting recipes")
	if err := seedRecipes(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}

	log.Println("[seed] inserting association rules")
	if err := seedRules(ctx, pool); err != nil {
		return fmt.Errorf("seed association rules: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

type seedRecipe struct {
	title       string
	sourceURL   string
	ingredients []string
	cluster     string
}

func seedRecipes(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	recipes := []seedRecipe{
		{
			title:       "Garlic Fried Rice",
			sourceURL:   "https://recipes.example.com/garlic-fried-rice",
			ingredients: []string{"rice", "garlic", "egg", "soy sauce", "salt", "pepper"},
			cluster:     "quick weeknight",
		},
		{
			title:       "Beef Rendang",
			sourceURL:   "https://recipes.example.com/beef-rendang",
			ingredients: []string{"beef", "coconut milk", "lemongrass", "galangal", "turmeric", "shallot", "garlic", "salt"},
			cluster:     "slow sunday",
		},
		{
			title:       "Chicken Satay",
			sourceURL:   "https://recipes.example.com/chicken-satay",
			ingredients: []string{"chicken", "peanut butter", "soy sauce", "garlic", "shallot", "lime"},
			cluster:     "grill night",
		},
		{
			title:       "Vegetable Stir Fry",
			sourceURL:   "https://recipes.example.com/vegetable-stir-fry",
			ingredients: []string{"carrot", "broccoli", "garlic", "ginger", "soy sauce", "sesame oil"},
			cluster:     "quick weeknight",
		},
		{
			title:       "Tomato Egg Drop Soup",
			sourceURL:   "https://recipes.example.com/tomato-egg-drop-soup",
			ingredients: []string{"tomato", "egg", "scallion", "salt", "pepper"},
			cluster:     "comfort food",
		},
		{
			title:       "Coconut Chicken Curry",
			sourceURL:   "https://recipes.example.com/coconut-chicken-curry",
			ingredients: []string{"chicken", "coconut milk", "curry powder", "onion", "garlic", "ginger", "salt"},
			cluster:     "slow sunday",
		},
		{
			title:       "Sweet Soy Noodles",
			sourceURL:   "https://recipes.example.com/sweet-soy-noodles",
			ingredients: []string{"noodles", "sweet soy sauce", "garlic", "shallot", "egg", "scallion"},
			cluster:     "quick weeknight",
		},
		{
			title:       "Grilled Fish with Sambal",
			sourceURL:   "https://recipes.example.com/grilled-fish-sambal",
			ingredients: []string{"fish", "chili", "shallot", "garlic", "lime", "salt"},
			cluster:     "grill night",
		},
		{
			title:       "Gado-Gado Salad",
			sourceURL:   "https://recipes.example.com/gado-gado",
			ingredients: []string{"peanut butter", "tofu", "egg", "cabbage", "bean sprouts", "garlic", "lime"},
			cluster:     "comfort food",
		},
		{
			title:       "Ginger Chicken Congee",
			sourceURL:   "https://recipes.example.com/ginger-chicken-congee",
			ingredients: []string{"rice", "chicken", "ginger", "scallion", "salt"},
			cluster:     "comfort food",
		},
	}

	rows := []string{}
	args := []any{}

	for _, r := range recipes {
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(365))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, r.title, r.sourceURL, r.ingredients, r.cluster, createdAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO recipes (title, source_url, ingredients, persona_cluster, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedRules(ctx context.Context, pool *pgxpool.Pool) error {
	// Order matters: earlier rules win when the per-recipe suggestion cap hits.
	rules := [][2]string{
		{"garlic", "ginger"},
		{"garlic,shallot", "candlenut"},
		{"soy sauce", "sesame oil"},
		{"coconut milk", "lemongrass"},
		{"chili,shallot", "shrimp paste"},
		{"peanut butter", "sweet soy sauce"},
		{"rice,egg", "scallion"},
		{"ginger", "turmeric"},
		{"lime", "coriander"},
		{"tomato", "basil"},
	}

	rows := []string{}
	args := []any{}

	for i, rule := range rules {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		args = append(args, i+1, rule[0], rule[1])
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO association_rules (position, antecedent, consequent) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}
