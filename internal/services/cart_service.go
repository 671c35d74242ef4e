package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"portal/internal/cart"
	"portal/internal/models"
	"portal/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher is the broker surface the cart service needs. It is a
// fire-and-forget side channel for transient notifications; the service
// never queries it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

var (
	// ErrSessionNotFound is returned for operations on an unknown session.
	ErrSessionNotFound = errors.New("cart session not found")
	// ErrNoReceipt is returned when a session has not completed a checkout.
	ErrNoReceipt = errors.New("no completed checkout for this session")
)

// ReceiptCurrency tags every receipt total. Prices are in Philippine pesos.
const ReceiptCurrency = "PHP"

// CartView is the renderable state of one session's cart.
type CartView struct {
	SessionID  string            `json:"session_id"`
	Lines      []models.CartLine `json:"lines"`
	TotalPrice float64           `json:"total_price"`
	TotalItems int               `json:"total_items"`
	Processing bool              `json:"processing"`
}

// cartSession pairs a cart with the receipt of its most recent checkout.
type cartSession struct {
	cart *cart.Cart

	mu          sync.RWMutex
	lastReceipt *models.Receipt
}

// CartService owns the portal's cart sessions. Each browsing session gets
// its own Cart instance, created on demand and addressed by an opaque
// session id; there is no ambient shared cart.
type CartService struct {
	catalogRepo repositories.CatalogRepository
	receiptRepo repositories.ReceiptRepository
	mqClient    EventPublisher // may be nil when no broker is configured
	delay       time.Duration

	mu       sync.RWMutex
	sessions map[string]*cartSession
}

// NewCartService creates a new CartService. delay is how long a checkout
// stays in the processing state before completing; it simulates the latency
// a real payment call would add.
func NewCartService(catalogRepo repositories.CatalogRepository, receiptRepo repositories.ReceiptRepository, mqClient EventPublisher, delay time.Duration) *CartService {
	return &CartService{
		catalogRepo: catalogRepo,
		receiptRepo: receiptRepo,
		mqClient:    mqClient,
		delay:       delay,
		sessions:    make(map[string]*cartSession),
	}
}

// CreateSession starts a new browsing session with an empty cart and
// returns its id.
func (s *CartService) CreateSession() string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = &cartSession{cart: cart.New()}
	s.mu.Unlock()
	return id
}

func (s *CartService) session(id string) (*cartSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetCart returns the current cart state for a session.
func (s *CartService) GetCart(sessionID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		SessionID:  sessionID,
		Lines:      sess.cart.Lines(),
		TotalPrice: sess.cart.TotalPrice(),
		TotalItems: sess.cart.TotalItems(),
		Processing: sess.cart.Status() == cart.StatusProcessing,
	}, nil
}

// AddItem looks the product up in its catalog and puts one unit in the
// session's cart.
func (s *CartService) AddItem(sessionID, catalogName string, productID int) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	product, err := s.catalogRepo.GetByID(catalogName, productID)
	if err != nil {
		return fmt.Errorf("cannot add to cart: %w", err)
	}
	if err := sess.cart.Add(*product); err != nil {
		return err
	}

	s.publish("cart.item_added", map[string]interface{}{
		"session_id": sessionID,
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

// UpdateQuantity applies a quantity delta to the session's line for
// productID. Unknown product ids are a no-op per the cart contract.
func (s *CartService) UpdateQuantity(sessionID string, productID, delta int) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return sess.cart.UpdateQuantity(productID, delta)
}

// RemoveItem drops the session's line for productID.
func (s *CartService) RemoveItem(sessionID string, productID int) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	if err := sess.cart.Remove(productID); err != nil {
		return err
	}

	s.publish("cart.item_removed", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
	})
	return nil
}

// Checkout begins the session's checkout. It returns immediately; after the
// processing delay the cart is drained, the receipt is stored, and an
// order.completed event is published. Passes through cart.ErrEmptyCart and
// cart.ErrCheckoutInProgress unchanged so callers can map them.
func (s *CartService) Checkout(sessionID string) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	_, err = sess.cart.Checkout(s.delay, func(lines []models.CartLine, total float64) {
		receipt := buildReceipt(lines, total)

		sess.mu.Lock()
		sess.lastReceipt = receipt
		sess.mu.Unlock()

		if err := s.receiptRepo.Save(receipt); err != nil {
			log.Printf("Warning: failed to store receipt %s: %v", receipt.OrderID, err)
		}

		s.publish("order.completed", map[string]interface{}{
			"session_id": sessionID,
			"order_id":   receipt.OrderID,
			"total":      receipt.Total,
			"currency":   receipt.Currency,
		})
	})
	return err
}

// Receipt returns the receipt of the session's most recent completed
// checkout, or ErrNoReceipt if none has completed yet.
func (s *CartService) Receipt(sessionID string) (*models.Receipt, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.RLock()
	defer sess.mu.RUnlock()
	if sess.lastReceipt == nil {
		return nil, ErrNoReceipt
	}
	return sess.lastReceipt, nil
}

// ReceiptByOrderID returns any stored receipt by its order id.
func (s *CartService) ReceiptByOrderID(orderID string) (*models.Receipt, error) {
	return s.receiptRepo.GetByOrderID(orderID)
}

// buildReceipt converts a checkout snapshot into an immutable receipt.
func buildReceipt(lines []models.CartLine, total float64) *models.Receipt {
	receiptLines := make([]models.ReceiptLine, 0, len(lines))
	for _, line := range lines {
		receiptLines = append(receiptLines, models.ReceiptLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.Price,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	return &models.Receipt{
		OrderID:    uuid.New().String(),
		Lines:      receiptLines,
		Total:      total,
		Currency:   ReceiptCurrency,
		CapturedAt: time.Now(),
	}
}

// publish sends a notification event, logging instead of failing when the
// broker is absent or unreachable.
func (s *CartService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("portal", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
