package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
)

// storageKey names the record holding the full transaction history.
const storageKey = "pos_transactions"

type kvRepo struct {
	store kvstore.Store
	mu    sync.Mutex
}

// NewKVRepository returns a Repository backed by the local record store.
// A missing or unreadable record degrades to an empty history.
func NewKVRepository(store kvstore.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) load(ctx context.Context) []*Transaction {
	raw, err := r.store.Get(ctx, storageKey)
	if err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("ledger: read %s: %v, starting with empty history", storageKey, err)
		}
		return nil
	}

	var txs []*Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		log.Printf("ledger: corrupt %s record: %v, starting with empty history", storageKey, err)
		return nil
	}
	return txs
}

func (r *kvRepo) save(ctx context.Context, txs []*Transaction) error {
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("ledger: encode transactions: %w", err)
	}
	return r.store.Put(ctx, storageKey, raw)
}

func (r *kvRepo) Append(ctx context.Context, tx *Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs := append(r.load(ctx), tx)
	return r.save(ctx, txs)
}

func (r *kvRepo) List(ctx context.Context) ([]*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx), nil
}

func (r *kvRepo) GetByID(ctx context.Context, id string) (*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tx := range r.load(ctx) {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, ErrTransactionNotFound
}
