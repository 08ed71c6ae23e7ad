package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/cache"
	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
	"github.com/dapurcerdas/recipe-recommendation-service/internal/engine"
	"github.com/dapurcerdas/recipe-recommendation-service/internal/ingredient"
	"github.com/dapurcerdas/recipe-recommendation-service/internal/repository"
)

const (
	defaultTopN      = 5
	maxTopN          = 20
	batchConcurrency = 10
)

type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	engine *engine.Engine
}

func NewService(repo *repository.Repository, cache *cache.Cache, eng *engine.Engine) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		engine: eng,
	}
}

// GetRecommendations normalizes the user's free-text ingredient list, loads
// the catalog snapshot (cache-aside), and runs the matching engine.
func (s *Service) GetRecommendations(ctx context.Context, rawIngredients string, topN int) (*domain.RecommendationResult, error) {
	if topN <= 0 {
		topN = defaultTopN
	} else if topN > maxTopN {
		topN = maxTopN
	}

	tokens := ingredient.Normalize(rawIngredients)
	if len(tokens) == 0 {
		return nil, domain.ErrEmptyIngredients
	}

	snap, cacheHit, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	recs := s.engine.Recommend(engine.RecommendInput{
		UserIngredients: ingredient.NewSet(tokens),
		Catalog:         snap.Recipes,
		Rules:           snap.Rules,
		TopN:            topN,
	})

	return &domain.RecommendationResult{
		Ingredients:     tokens,
		Recommendations: recs,
		CacheHit:        cacheHit,
	}, nil
}

// loadSnapshot fetches the materialized catalog and rule table, preferring the
// cache. Cache failures degrade to a direct load.
func (s *Service) loadSnapshot(ctx context.Context) (*domain.CatalogSnapshot, bool, error) {
	snap, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[service] snapshot cache get error: %v", err)
	}
	if snap != nil {
		return snap, true, nil
	}

	// Cache miss -> load from the database
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("fetch recipes: %w", err)
	}

	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("fetch rules: %w", err)
	}

	snap = &domain.CatalogSnapshot{Recipes: recipes, Rules: rules}

	if cacheErr := s.cache.SetSnapshot(ctx, snap); cacheErr != nil {
		log.Printf("[service] snapshot cache set error: %v", cacheErr)
	}

	return snap, false, nil
}

// GetBatchRecommendations runs one recommendation pass per ingredient-list
// request, with bounded concurrency. The catalog is read-only during a pass,
// so the workers share it safely.
func (s *Service) GetBatchRecommendations(ctx context.Context, requests []string, topN int) (*domain.BatchResponse, error) {
	start := time.Now()

	if topN <= 0 {
		topN = defaultTopN
	} else if topN > maxTopN {
		topN = maxTopN
	}

	// Process requests concurrently with bounded worker pool
	results := make([]domain.BatchItemResult, len(requests))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, raw := range requests {
		wg.Add(1)
		go func(idx int, ingredients string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processBatchItem(ctx, idx, ingredients, topN)
		}(i, raw)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	elapsed := time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		TopN:    topN,
		Results: results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: elapsed,
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates recommendations for a single batch item, capturing errors.
func (s *Service) processBatchItem(ctx context.Context, idx int, rawIngredients string, topN int) domain.BatchItemResult {
	result, err := s.GetRecommendations(ctx, rawIngredients, topN)
	if err != nil {
		log.Printf("[service] batch: item %d failed: %v", idx, err)
		code, msg := categorizeError(err)
		return domain.BatchItemResult{
			Index:   idx,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchItemResult{
		Index:           idx,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

// ClearSnapshotCache drops the cached catalog: used after catalog reseeds.
func (s *Service) ClearSnapshotCache(ctx context.Context) error {
	if err := s.cache.ClearSnapshot(ctx); err != nil {
		log.Printf("[service] snapshot cache invalidation error: %v", err)
		return err
	}
	return nil
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrEmptyIngredients) {
		return "empty_ingredients", "ingredient list is empty after normalization"
	}
	return "internal_error", "an unexpected error occurred"
}
