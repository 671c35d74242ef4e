package services

import (
	"fmt"
	"strings"
	"time"

	"portal/internal/cache"
	"portal/internal/catalog"
	"portal/internal/models"
	"portal/internal/repositories"
)

// CatalogService handles catalog listings: it pulls products from the
// repository, runs them through the filter/sort engine, and memoizes the
// results in a TTL cache.
type CatalogService struct {
	repo  repositories.CatalogRepository
	cache *cache.Cache
}

// NewCatalogService creates a new CatalogService. Listing results are cached
// for cacheTTL.
func NewCatalogService(repo repositories.CatalogRepository, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache.New(cacheTTL),
	}
}

// List returns the filtered, ordered view of one catalog. The second return
// value reports whether the result came from the cache.
func (s *CatalogService) List(catalogName string, query models.ListQuery) ([]models.Product, bool, error) {
	key := listCacheKey(catalogName, query)
	if cached, found := s.cache.Get(key); found {
		if products, ok := cached.([]models.Product); ok {
			return products, true, nil
		}
	}

	items, err := s.repo.GetAll(catalogName)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load catalog %s: %w", catalogName, err)
	}

	result := catalog.Apply(items, query)
	s.cache.Set(key, result)
	return result, false, nil
}

// GetByID retrieves a single product from a catalog.
func (s *CatalogService) GetByID(catalogName string, id int) (*models.Product, error) {
	return s.repo.GetByID(catalogName, id)
}

// AddProduct inserts a product and invalidates cached listings of its
// catalog.
func (s *CatalogService) AddProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.cache.DeleteByPrefix(product.Catalog + "|")
	return nil
}

func listCacheKey(catalogName string, query models.ListQuery) string {
	return strings.Join([]string{
		catalogName,
		strings.ToLower(strings.TrimSpace(query.Search)),
		query.Category,
		string(query.Sort),
	}, "|")
}
