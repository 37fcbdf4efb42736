package ledger

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/nujoom-retail/pos-backend/internal/metrics"
	"github.com/nujoom-retail/pos-backend/internal/modules/cart"
)

// ErrEmptyCart means checkout was asked for with nothing in the cart.
// The action is declined; it is not a user-facing failure.
var ErrEmptyCart = errors.New("ledger: cart is empty")

// Service defines checkout and transaction lookup.
type Service interface {
	// Checkout snapshots the cart, records the sale, and clears the cart.
	Checkout(ctx context.Context) (*Transaction, error)
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
}

type service struct {
	repo Repository
	cart *cart.Engine
	now  func() time.Time
}

// NewService creates the checkout service over the given cart and history.
func NewService(repo Repository, engine *cart.Engine) Service {
	return &service{repo: repo, cart: engine, now: time.Now}
}

func (s *service) Checkout(ctx context.Context) (*Transaction, error) {
	// One lock for items and totals: a scan landing mid-checkout must not
	// produce a transaction whose totals disagree with its snapshot.
	items, totals := s.cart.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()

	// Snapshot() already copies the lines, so catalog edits after this
	// point cannot reach into the recorded sale.
	tx := &Transaction{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Date:     now,
		Items:    items,
		Subtotal: totals.Subtotal,
		VAT:      totals.VAT,
		Total:    totals.Total,
	}

	if err := s.repo.Append(ctx, tx); err != nil {
		return nil, err
	}
	// Deduct only what this sale recorded; units added since the snapshot
	// stay in the cart instead of being lost.
	s.cart.Deduct(items)
	metrics.RecordSale(tx.Total)
	return tx, nil
}

func (s *service) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	return s.repo.List(ctx)
}
