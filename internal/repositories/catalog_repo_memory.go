package repositories

import (
	"fmt"
	"sync"

	"portal/internal/models"
)

// MemoryCatalogRepository is an in-memory implementation of
// CatalogRepository. Products are kept per catalog in insertion order, which
// is the tie-break order the filter/sort engine relies on.
type MemoryCatalogRepository struct {
	catalogs map[string][]models.Product
	mu       sync.RWMutex
}

// NewMemoryCatalogRepository creates an empty in-memory catalog store.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		catalogs: make(map[string][]models.Product),
	}
}

// GetAll returns all products in the given catalog, in insertion order.
func (r *MemoryCatalogRepository) GetAll(catalog string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.catalogs[catalog]
	out := make([]models.Product, len(items))
	copy(out, items)
	return out, nil
}

// GetByID returns the product with the given id within a catalog.
func (r *MemoryCatalogRepository) GetByID(catalog string, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.catalogs[catalog] {
		if item.ID == id {
			product := item
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %d not found in catalog %s", id, catalog)
}

// Create appends a product to its catalog. Product ids must be unique
// within a catalog.
func (r *MemoryCatalogRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.catalogs[product.Catalog] {
		if item.ID == product.ID {
			return fmt.Errorf("product %d already exists in catalog %s", product.ID, product.Catalog)
		}
	}
	r.catalogs[product.Catalog] = append(r.catalogs[product.Catalog], *product)
	return nil
}
