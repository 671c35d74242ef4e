package repositories

import (
	"fmt"

	"portal/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository,
// selectable via CATALOG_STORE=sqlite. Listings are ordered by product id so
// the engine's stable-sort tie-break sees the same catalog order as the
// in-memory store.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// GetAll retrieves all products of one catalog from the database.
func (r *GORMCatalogRepository) GetAll(catalog string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("catalog = ?", catalog).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog %s: %w", catalog, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its id within a catalog.
func (r *GORMCatalogRepository) GetByID(catalog string, id int) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("catalog = ? AND id = ?", catalog, id).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product %d not found in catalog %s", id, catalog)
		}
		return nil, fmt.Errorf("failed to get product %d from catalog %s: %w", id, catalog, err)
	}
	return &product, nil
}

// Create inserts a product into the database.
func (r *GORMCatalogRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}
