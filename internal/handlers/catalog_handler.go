package handlers

import (
	"log"
	"strconv"
	"strings"

	"portal/internal/models"
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for catalog browsing.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/:catalog", h.HandleList)
	catalogRoutes.Get("/:catalog/:id", h.HandleGetByID)
}

func knownCatalog(name string) bool {
	switch name {
	case models.CatalogMerch, models.CatalogBooks, models.CatalogJournals:
		return true
	}
	return false
}

// HandleList returns a filtered, ordered catalog listing. Query params:
// search (free text), category (exact, "All" for everything), sort
// (featured|price-low|price-high|rating|newest).
func (h *CatalogHandler) HandleList(c *fiber.Ctx) error {
	catalogName := c.Params("catalog")
	if !knownCatalog(catalogName) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Unknown catalog: " + catalogName,
		})
	}

	sortKey, err := models.ParseSortKey(c.Query("sort"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid sort parameter",
			"error":   err.Error(),
		})
	}

	query := models.ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category", models.CategoryAll),
		Sort:     sortKey,
	}

	items, cached, err := h.service.List(catalogName, query)
	if err != nil {
		log.Printf("Error listing catalog %s: %v", catalogName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not list catalog",
			"error":   err.Error(),
		})
	}

	if cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}

	return c.JSON(fiber.Map{
		"catalog": catalogName,
		"count":   len(items),
		"items":   items,
	})
}

// HandleGetByID returns a single product from a catalog.
func (h *CatalogHandler) HandleGetByID(c *fiber.Ctx) error {
	catalogName := c.Params("catalog")
	if !knownCatalog(catalogName) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Unknown catalog: " + catalogName,
		})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	product, err := h.service.GetByID(catalogName, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error getting product %d from catalog %s: %v", id, catalogName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}
