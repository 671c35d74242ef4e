package repositories

import (
	"portal/internal/models"
)

// CatalogRepository defines the interface for catalog data access.
type CatalogRepository interface {
	GetAll(catalog string) ([]models.Product, error)
	GetByID(catalog string, id int) (*models.Product, error)
	Create(product *models.Product) error
}
