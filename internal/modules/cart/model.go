package cart

import (
	"github.com/google/uuid"

	"github.com/nujoom-retail/pos-backend/internal/modules/catalog"
)

// Item is one line of the sale in progress. Product fields are copied in
// at add time, so a catalog edit never changes an item already rung up.
type Item struct {
	ProductID uuid.UUID `json:"product_id"`
	Barcode   string    `json:"barcode"`
	NameEN    string    `json:"name_en"`
	NameAR    string    `json:"name_ar"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
}

func itemFromProduct(p *catalog.Product) Item {
	return Item{
		ProductID: p.ID,
		Barcode:   p.Barcode,
		NameEN:    p.NameEN,
		NameAR:    p.NameAR,
		Price:     p.Price,
		Category:  p.Category,
		Quantity:  1,
	}
}

// Totals is the computed money summary of a cart. Amounts are accumulated
// unrounded; rounding happens only when an invoice is rendered.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}
