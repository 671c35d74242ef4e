package repositories

import (
	"fmt"
	"sync"

	"portal/internal/models"
)

// MemoryReceiptRepository is an in-memory implementation of
// ReceiptRepository. Receipts live only for the process lifetime, matching
// the portal's no-persistence scope.
type MemoryReceiptRepository struct {
	receipts map[string]models.Receipt
	mu       sync.RWMutex
}

// NewMemoryReceiptRepository creates a new instance of MemoryReceiptRepository.
func NewMemoryReceiptRepository() *MemoryReceiptRepository {
	return &MemoryReceiptRepository{
		receipts: make(map[string]models.Receipt),
	}
}

// GetAll returns all stored receipts.
func (r *MemoryReceiptRepository) GetAll() ([]models.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receiptList := make([]models.Receipt, 0, len(r.receipts))
	for _, receipt := range r.receipts {
		receiptList = append(receiptList, receipt)
	}
	return receiptList, nil
}

// GetByOrderID returns a receipt by its order id.
func (r *MemoryReceiptRepository) GetByOrderID(orderID string) (*models.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok := r.receipts[orderID]
	if !ok {
		return nil, fmt.Errorf("receipt with order ID %s not found", orderID)
	}
	return &receipt, nil
}

// Save stores a completed receipt.
func (r *MemoryReceiptRepository) Save(receipt *models.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if receipt.OrderID == "" {
		return fmt.Errorf("receipt is missing an order ID")
	}
	r.receipts[receipt.OrderID] = *receipt
	return nil
}
