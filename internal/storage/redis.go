package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

const catalogKey = "pizzas:catalog"

// CatalogCache keeps a JSON snapshot of the menu in Redis so catalog
// reads skip Postgres on the hot path.
type CatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{Client: client, TTL: ttl}
}

func (c *CatalogCache) Get(ctx context.Context) ([]domain.Pizza, bool) {
	payload, err := c.Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}

	var pizzas []domain.Pizza
	if err := json.Unmarshal(payload, &pizzas); err != nil {
		return nil, false
	}
	return pizzas, true
}

func (c *CatalogCache) Set(ctx context.Context, pizzas []domain.Pizza) error {
	payload, err := json.Marshal(pizzas)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, catalogKey).Err()
}
