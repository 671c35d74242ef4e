package repositories

import (
	"portal/internal/models"
)

// ReceiptRepository defines the interface for completed-checkout receipts.
// Receipts are immutable once saved; there is no update or delete.
type ReceiptRepository interface {
	GetAll() ([]models.Receipt, error)
	GetByOrderID(orderID string) (*models.Receipt, error)
	Save(receipt *models.Receipt) error
}
