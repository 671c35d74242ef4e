package repositories

import (
	"fmt"
	"log"

	"portal/internal/models"

	"github.com/go-playground/validator/v10"
)

// PortalCatalogData returns the static product data behind the portal's
// browsable views: the merch store, library textbooks, and library journals.
// A real system would fetch these from a backend.
func PortalCatalogData() []models.Product {
	return []models.Product{
		// Merch store.
		{ID: 1, Catalog: models.CatalogMerch, Name: "PACSMIN Chemistry Hoodie", Price: 999, Image: "/merch/hoodie.jpg", Category: "Apparel", Rating: 4.8, Reviews: 124, IsNew: true, IsTrending: true},
		{ID: 2, Catalog: models.CatalogMerch, Name: "Periodic Table T-Shirt", Price: 599, Image: "/merch/periodic-table.jpg", Category: "Apparel", Rating: 4.6, Reviews: 89},
		{ID: 3, Catalog: models.CatalogMerch, Name: "Chemistry Lab Mug", Price: 299, Image: "/merch/chem-mug.avif", Category: "Accessories", Rating: 4.7, Reviews: 156, IsTrending: true},
		{ID: 4, Catalog: models.CatalogMerch, Name: "Lab Equipment Backpack", Price: 799, OriginalPrice: 999, Image: "/merch/backpack.jpg", Category: "Accessories", Rating: 4.9, Reviews: 203, IsNew: true},
		{ID: 5, Catalog: models.CatalogMerch, Name: "PACSMIN Chemistry Cap", Price: 199, Image: "/merch/cap.jpg", Category: "Apparel", Rating: 4.5, Reviews: 67},
		{ID: 6, Catalog: models.CatalogMerch, Name: "Molecular Structure Bottle", Price: 2999, Image: "/merch/molecule.jpg", Category: "Accessories", Rating: 4.4, Reviews: 91},

		// E-library textbooks.
		{ID: 1, Catalog: models.CatalogBooks, Name: "Organic Chemistry", Author: "Clayden", Edition: "2nd", Category: "Organic Chemistry", Description: "A comprehensive guide to organic chemistry principles and reactions."},
		{ID: 2, Catalog: models.CatalogBooks, Name: "Physical Chemistry", Author: "Atkins", Edition: "11th", Category: "Physical Chemistry", Description: "A classic textbook covering thermodynamics, quantum mechanics, and kinetics."},

		// E-library journals.
		{ID: 1, Catalog: models.CatalogJournals, Name: "Journal of Chemical Education", Publisher: "American Chemical Society", LatestIssue: "Vol 101, Issue 5", Category: "Chemical Education", Description: "Peer-reviewed articles on chemical education, research, and best practices."},
		{ID: 2, Catalog: models.CatalogJournals, Name: "Nature Chemistry", Publisher: "Springer Nature", LatestIssue: "Vol 16, Issue 4", Category: "General Chemistry", Description: "High-quality research across all disciplines of chemistry."},
	}
}

// SeedPortalCatalog validates the static product data and loads it into the
// given repository.
func SeedPortalCatalog(repo CatalogRepository) error {
	validate := validator.New()
	products := PortalCatalogData()
	for i := range products {
		if err := validate.Struct(&products[i]); err != nil {
			return fmt.Errorf("invalid seed product %q: %w", products[i].Name, err)
		}
		// A create failure (a durable store that was already seeded) is
		// logged and skipped rather than failing startup.
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Skipping seed product %q: %v", products[i].Name, err)
		}
	}
	return nil
}
