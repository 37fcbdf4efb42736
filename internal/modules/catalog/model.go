package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item in the store catalog. Names are kept in both
// display locales so receipts and the sales screen can switch language
// without a second lookup.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Barcode   string    `json:"barcode"`
	NameEN    string    `json:"name_en"`
	NameAR    string    `json:"name_ar"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductRequest holds the data for creating or editing a product.
type ProductRequest struct {
	Barcode  string  `json:"barcode"`
	NameEN   string  `json:"name_en"`
	NameAR   string  `json:"name_ar"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}
