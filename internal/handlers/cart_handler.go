package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"portal/internal/cart"
	"portal/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart sessions and checkout.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/cart/sessions")
	sessionRoutes.Post("/", h.HandleCreateSession)
	sessionRoutes.Get("/:sid", h.HandleGetCart)
	sessionRoutes.Post("/:sid/items", h.HandleAddItem)
	sessionRoutes.Patch("/:sid/items/:id", h.HandleUpdateQuantity)
	sessionRoutes.Delete("/:sid/items/:id", h.HandleRemoveItem)
	sessionRoutes.Post("/:sid/checkout", h.HandleCheckout)
	sessionRoutes.Get("/:sid/receipt", h.HandleReceipt)

	router.Get("/receipts/:orderID", h.HandleReceiptByOrderID)
}

// HandleCreateSession starts a new browsing session with an empty cart.
func (h *CartHandler) HandleCreateSession(c *fiber.Ctx) error {
	sessionID := h.service.CreateSession()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": sessionID,
	})
}

// HandleGetCart returns the session's cart contents and totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	view, err := h.service.GetCart(c.Params("sid"))
	if err != nil {
		return h.mapCartError(c, err, "Could not retrieve cart")
	}
	return c.JSON(view)
}

// addItemRequest is the body of POST /cart/sessions/:sid/items.
type addItemRequest struct {
	Catalog   string `json:"catalog" validate:"required,oneof=merch books journals"`
	ProductID int    `json:"product_id" validate:"required,gt=0"`
}

// HandleAddItem puts one unit of a catalog product in the session's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "catalog and a positive product_id are required",
			"error":   err.Error(),
		})
	}

	if err := h.service.AddItem(c.Params("sid"), req.Catalog, req.ProductID); err != nil {
		return h.mapCartError(c, err, "Could not add item to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added to cart",
	})
}

// quantityRequest is the body of PATCH /cart/sessions/:sid/items/:id.
type quantityRequest struct {
	Delta int `json:"delta"`
}

// HandleUpdateQuantity applies a quantity delta to one cart line. A line
// reaching zero is removed; unknown product ids are a no-op.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateQuantity(c.Params("sid"), productID, req.Delta); err != nil {
		return h.mapCartError(c, err, "Could not update quantity")
	}
	return c.JSON(fiber.Map{
		"message": "Quantity updated",
	})
}

// HandleRemoveItem drops one cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	if err := h.service.RemoveItem(c.Params("sid"), productID); err != nil {
		return h.mapCartError(c, err, "Could not remove item")
	}
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleCheckout begins the session's checkout. The response is 202: the
// cart drains and the receipt appears once the processing delay elapses.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	if err := h.service.Checkout(c.Params("sid")); err != nil {
		return h.mapCartError(c, err, "Could not start checkout")
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Checkout processing",
	})
}

// HandleReceipt returns the receipt of the session's last completed
// checkout.
func (h *CartHandler) HandleReceipt(c *fiber.Ctx) error {
	receipt, err := h.service.Receipt(c.Params("sid"))
	if err != nil {
		return h.mapCartError(c, err, "Could not retrieve receipt")
	}
	return c.JSON(receipt)
}

// HandleReceiptByOrderID returns any stored receipt by its order id.
func (h *CartHandler) HandleReceiptByOrderID(c *fiber.Ctx) error {
	receipt, err := h.service.ReceiptByOrderID(c.Params("orderID"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(receipt)
}

// mapCartError translates service and engine errors to HTTP statuses.
func (h *CartHandler) mapCartError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cart session not found",
		})
	case errors.Is(err, services.ErrNoReceipt):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No completed checkout for this session",
		})
	case errors.Is(err, cart.ErrCheckoutInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "A checkout is already processing for this session",
		})
	case errors.Is(err, cart.ErrEmptyCart):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Cannot check out an empty cart",
		})
	case strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		log.Printf("Cart handler error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}
