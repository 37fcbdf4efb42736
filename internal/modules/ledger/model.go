package ledger

import (
	"time"

	"github.com/nujoom-retail/pos-backend/internal/modules/cart"
)

// Transaction is one completed sale. Items are a snapshot of the cart at
// checkout time; nothing in a Transaction is ever mutated afterwards, so
// historical receipts survive any later catalog edit.
type Transaction struct {
	ID       string      `json:"id"`
	Date     time.Time   `json:"date"`
	Items    []cart.Item `json:"items"`
	Subtotal float64     `json:"subtotal"`
	VAT      float64     `json:"vat"`
	Total    float64     `json:"total"`
}
