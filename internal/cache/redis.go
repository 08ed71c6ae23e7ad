package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const snapshotKey = "catalog:snapshot"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetSnapshot returns the cached catalog snapshot, or nil on a miss.
func (c *Cache) GetSnapshot(ctx context.Context) (*domain.CatalogSnapshot, error) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get catalog snapshot from cache: %w", err)
	}

	var snap domain.CatalogSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}

	return &snap, nil
}

// SetSnapshot stores the materialized catalog and rule table with TTL.
func (c *Cache) SetSnapshot(ctx context.Context, snap *domain.CatalogSnapshot) error {
	val, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set catalog snapshot in cache: %w", err)
	}

	return nil
}

// ClearSnapshot drops the cached catalog: used after reseeding or catalog edits.
func (c *Cache) ClearSnapshot(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", snapshotKey, err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
