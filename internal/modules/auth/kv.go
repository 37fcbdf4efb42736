package auth

import (
	"context"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
)

// storageKey names the record holding the cashier PIN hash.
const storageKey = "pos_cashier_pin"

type kvRepo struct{ store kvstore.Store }

// NewKVRepository returns a Repository backed by the local record store.
func NewKVRepository(store kvstore.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) GetPINHash(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *kvRepo) SetPINHash(ctx context.Context, hash string) error {
	return r.store.Put(ctx, storageKey, []byte(hash))
}
