package models

import "gorm.io/gorm"

// Catalog identifiers for the portal's browsable collections.
const (
	CatalogMerch    = "merch"
	CatalogBooks    = "books"
	CatalogJournals = "journals"
)

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "All"

// Product represents a browsable or purchasable item in one of the portal
// catalogs. Merch, library books, and journals share this shape; the fields
// past Category are optional extensions that only some catalogs fill in.
type Product struct {
	// Catalog and ID form a composite key: ids are unique within a catalog,
	// not across catalogs.
	ID      int    `json:"id" gorm:"primaryKey;autoIncrement:false" validate:"required,gt=0"`
	Catalog string `json:"catalog" gorm:"primaryKey;type:varchar(32)" validate:"required,oneof=merch books journals"`
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image" validate:"omitempty"`
	Category string  `json:"category" validate:"required,max=60"`

	Rating        float64 `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Reviews       int     `json:"reviews,omitempty" validate:"gte=0"`
	IsNew         bool    `json:"is_new,omitempty"`
	IsTrending    bool    `json:"is_trending,omitempty"`
	OriginalPrice float64 `json:"original_price,omitempty" validate:"gte=0"`

	// Library extensions.
	Author      string `json:"author,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Edition     string `json:"edition,omitempty"`
	LatestIssue string `json:"latest_issue,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`

	gorm.Model `json:"-"`
}

// PlaceholderImage is served when a product carries no image reference.
const PlaceholderImage = "/placeholder.svg"

// DisplayImage returns the product image, falling back to the placeholder
// asset when none is set. A missing image is never an error.
func (p Product) DisplayImage() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}
