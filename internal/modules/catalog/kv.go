package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
)

// storageKey names the record holding the full product collection.
const storageKey = "pos_products"

type kvRepo struct {
	store kvstore.Store
	mu    sync.Mutex // serializes load-modify-save of the stored collection
}

// NewKVRepository returns a Repository backed by the local record store.
// A missing or unreadable record degrades to the seed catalog.
func NewKVRepository(store kvstore.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) load(ctx context.Context) []*Product {
	raw, err := r.store.Get(ctx, storageKey)
	if err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("catalog: read %s: %v, using seed catalog", storageKey, err)
		}
		return seedProducts()
	}

	var products []*Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Printf("catalog: corrupt %s record: %v, using seed catalog", storageKey, err)
		return seedProducts()
	}
	return products
}

func (r *kvRepo) save(ctx context.Context, products []*Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog: encode products: %w", err)
	}
	return r.store.Put(ctx, storageKey, raw)
}

func (r *kvRepo) List(ctx context.Context) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx), nil
}

func (r *kvRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.load(ctx) {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *kvRepo) GetByBarcode(ctx context.Context, barcode string) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.load(ctx) {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *kvRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := append(r.load(ctx), p)
	return r.save(ctx, products)
}

func (r *kvRepo) Update(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load(ctx)
	for i, existing := range products {
		if existing.ID == p.ID {
			products[i] = p
			return r.save(ctx, products)
		}
	}
	return ErrProductNotFound
}

func (r *kvRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID.String() != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrProductNotFound
	}
	return r.save(ctx, kept)
}
