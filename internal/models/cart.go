package models

import "time"

// CartLine is one product-and-quantity pairing inside a cart. Name, price,
// and image are snapshotted from the catalog when the line is created, so a
// later catalog change never rewrites a cart retroactively.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // Price at the time the line was added
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// ReceiptLine is a finalized line item on a receipt.
type ReceiptLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt is the immutable record of a completed checkout. It is built from
// a snapshot of the cart taken when checkout began, so clearing the cart
// afterwards cannot mutate it.
type Receipt struct {
	OrderID    string        `json:"order_id"`
	Lines      []ReceiptLine `json:"lines"`
	Total      float64       `json:"total"`
	Currency   string        `json:"currency"` // e.g. "PHP"
	CapturedAt time.Time     `json:"captured_at"`
}
