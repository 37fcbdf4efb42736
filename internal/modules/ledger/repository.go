package ledger

import (
	"context"
	"errors"
)

// ErrTransactionNotFound is returned when an id matches no recorded sale.
var ErrTransactionNotFound = errors.New("ledger: transaction not found")

// Repository defines storage for the append-only transaction history.
type Repository interface {
	Append(ctx context.Context, tx *Transaction) error
	List(ctx context.Context) ([]*Transaction, error)
	GetByID(ctx context.Context, id string) (*Transaction, error)
}
