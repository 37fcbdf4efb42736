package catalog

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when a product id or barcode matches
// nothing in the catalog.
var ErrProductNotFound = errors.New("catalog: product not found")

// Repository defines the interface for catalog storage.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
