package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"portal/internal/handlers"
	"portal/internal/models"
	"portal/internal/repositories"
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app for testing with an in-memory SQLite catalog
// store, the static portal seed data, no broker, and a short checkout delay.
func setupApp() (*fiber.App, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	catalogRepo := repositories.NewGORMCatalogRepository(db)
	if err := repositories.SeedPortalCatalog(catalogRepo); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	receiptRepo := repositories.NewMemoryReceiptRepository()

	catalogService := services.NewCatalogService(catalogRepo, time.Minute)
	cartService := services.NewCartService(catalogRepo, receiptRepo, nil, 150*time.Millisecond)
	contentService := services.NewContentService()

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(apiV1)
	handlers.NewCartHandler(cartService).RegisterRoutes(apiV1)
	handlers.NewContentHandler(contentService).RegisterRoutes(apiV1)

	return app, nil
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func getJSON(t *testing.T, app *fiber.App, path string, out interface{}) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	if out != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	resp.Body.Close()
	return resp
}

func sendJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

type listResponse struct {
	Catalog string           `json:"catalog"`
	Count   int              `json:"count"`
	Items   []models.Product `json:"items"`
}

func TestCatalogListing(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)

	t.Run("FilterAndSort", func(t *testing.T) {
		var payload listResponse
		resp := getJSON(t, app, "/api/v1/catalog/merch?category=Apparel&sort=price-low", &payload)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 3, payload.Count)
		assert.Equal(t, "PACSMIN Chemistry Cap", payload.Items[0].Name)
		assert.Equal(t, "Periodic Table T-Shirt", payload.Items[1].Name)
		assert.Equal(t, "PACSMIN Chemistry Hoodie", payload.Items[2].Name)
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		var payload listResponse
		resp := getJSON(t, app, "/api/v1/catalog/merch?search=HOOD", &payload)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, payload.Count)
		assert.Equal(t, "PACSMIN Chemistry Hoodie", payload.Items[0].Name)
	})

	t.Run("LibrarySearchMatchesAuthor", func(t *testing.T) {
		var payload listResponse
		resp := getJSON(t, app, "/api/v1/catalog/books?search=clayden", &payload)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, payload.Count)
		assert.Equal(t, "Organic Chemistry", payload.Items[0].Name)
	})

	t.Run("RepeatedQueryHitsCache", func(t *testing.T) {
		first := getJSON(t, app, "/api/v1/catalog/journals", &listResponse{})
		assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

		second := getJSON(t, app, "/api/v1/catalog/journals", &listResponse{})
		assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	})

	t.Run("BadSortKeyIs400", func(t *testing.T) {
		resp := getJSON(t, app, "/api/v1/catalog/merch?sort=cheapest", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("GetByID", func(t *testing.T) {
		var product models.Product
		resp := getJSON(t, app, "/api/v1/catalog/merch/3", &product)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Chemistry Lab Mug", product.Name)

		resp = getJSON(t, app, "/api/v1/catalog/merch/999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCartFlow(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)

	// Create a session.
	resp := sendJSON(t, app, http.MethodPost, "/api/v1/cart/sessions/", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		SessionID string `json:"session_id"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.NotEmpty(t, created.SessionID)
	base := "/api/v1/cart/sessions/" + created.SessionID

	// Add the hoodie twice and the mug once.
	for i := 0; i < 2; i++ {
		resp = sendJSON(t, app, http.MethodPost, base+"/items", map[string]interface{}{"catalog": "merch", "product_id": 1})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	resp = sendJSON(t, app, http.MethodPost, base+"/items", map[string]interface{}{"catalog": "merch", "product_id": 3})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var view services.CartView
	getJSON(t, app, base, &view)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, 3, view.TotalItems)
	assert.Equal(t, 2*999.0+299.0, view.TotalPrice)

	// Adjust quantities.
	resp = sendJSON(t, app, http.MethodPatch, base+"/items/3", map[string]int{"delta": 2})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = sendJSON(t, app, http.MethodDelete, base+"/items/3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	getJSON(t, app, base, &view)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.TotalItems)

	// Receipt does not exist before checkout completes.
	resp = getJSON(t, app, base+"/receipt", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Checkout is accepted and a concurrent second attempt conflicts.
	resp = sendJSON(t, app, http.MethodPost, base+"/checkout", nil)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = sendJSON(t, app, http.MethodPost, base+"/checkout", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Mutations during processing are rejected with 409.
	resp = sendJSON(t, app, http.MethodPost, base+"/items", map[string]interface{}{"catalog": "merch", "product_id": 5})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// The receipt appears once the processing delay elapses.
	assert.Eventually(t, func() bool {
		req := httptest.NewRequest(http.MethodGet, base+"/receipt", nil)
		r, err := app.Test(req, -1)
		if err != nil {
			return false
		}
		defer r.Body.Close()
		return r.StatusCode == http.StatusOK
	}, time.Second, 5*time.Millisecond)

	var receipt models.Receipt
	getJSON(t, app, base+"/receipt", &receipt)
	assert.Len(t, receipt.Lines, 1)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
	assert.Equal(t, 2*999.0, receipt.Total)
	assert.Equal(t, "PHP", receipt.Currency)

	// The live cart drained.
	getJSON(t, app, base, &view)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0.0, view.TotalPrice)

	// The receipt is also addressable by order id.
	var byOrder models.Receipt
	resp = getJSON(t, app, "/api/v1/receipts/"+receipt.OrderID, &byOrder)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, receipt.OrderID, byOrder.OrderID)

	// Checking out the now-empty cart is rejected.
	resp = sendJSON(t, app, http.MethodPost, base+"/checkout", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestCartValidationAndMissingEntities(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)

	// Unknown session.
	resp := getJSON(t, app, "/api/v1/cart/sessions/not-a-session", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = sendJSON(t, app, http.MethodPost, "/api/v1/cart/sessions/", nil)
	var created struct {
		SessionID string `json:"session_id"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	base := "/api/v1/cart/sessions/" + created.SessionID

	// Body validation failures.
	resp = sendJSON(t, app, http.MethodPost, base+"/items", map[string]interface{}{"catalog": "vehicles", "product_id": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = sendJSON(t, app, http.MethodPost, base+"/items", map[string]interface{}{"catalog": "merch"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Product missing from the catalog.
	resp = sendJSON(t, app, http.MethodPost, base+"/items", map[string]interface{}{"catalog": "merch", "product_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Removing or adjusting ids not in the cart is a no-op, not an error.
	resp = sendJSON(t, app, http.MethodDelete, base+"/items/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = sendJSON(t, app, http.MethodPatch, base+"/items/1", map[string]int{"delta": -3})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboardContent(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)

	var posts []models.FeaturedPost
	resp := getJSON(t, app, "/api/v1/dashboard/posts", &posts)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, posts, 4)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].Date.Before(posts[i].Date), "posts must be newest first")
	}

	var events []models.Event
	resp = getJSON(t, app, "/api/v1/dashboard/events", &events)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i-1].Date.After(events[i].Date), "events must be chronological")
	}
}
