package service

import (
	"context"
	"log"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

type CatalogService struct {
	repo  PizzaRepository
	cache CatalogCache
}

func NewCatalogService(repo PizzaRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns the menu, preferring the cached snapshot. A cache miss
// falls through to the database and repopulates the cache.
func (s *CatalogService) List(ctx context.Context) ([]domain.Pizza, error) {
	if s.cache != nil {
		if pizzas, ok := s.cache.Get(ctx); ok {
			return pizzas, nil
		}
	}

	pizzas, err := s.repo.ListPizzas()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pizzas); err != nil {
			log.Printf("Warning: failed to cache catalog: %v", err)
		}
	}
	return pizzas, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
