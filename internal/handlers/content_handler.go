package handlers

import (
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the dashboard's read-only content.
type ContentHandler struct {
	service *services.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Get("/posts", h.HandleFeaturedPosts)
	dashboardRoutes.Get("/events", h.HandleUpcomingEvents)
}

func (h *ContentHandler) HandleFeaturedPosts(c *fiber.Ctx) error {
	return c.JSON(h.service.FeaturedPosts())
}

func (h *ContentHandler) HandleUpcomingEvents(c *fiber.Ctx) error {
	return c.JSON(h.service.UpcomingEvents())
}
