// Package backup exposes a read-only dump of the terminal's state as a
// downloadable file. There is deliberately no import counterpart.
package backup

import (
	"context"

	"github.com/nujoom-retail/pos-backend/internal/modules/catalog"
	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
)

// Snapshot is the full exportable state of the terminal.
type Snapshot struct {
	Products     []*catalog.Product    `json:"products"`
	Transactions []*ledger.Transaction `json:"transactions"`
}

// Service assembles export snapshots.
type Service interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type service struct {
	catalog catalog.Repository
	ledger  ledger.Repository
}

func NewService(catalogRepo catalog.Repository, ledgerRepo ledger.Repository) Service {
	return &service{catalog: catalogRepo, ledger: ledgerRepo}
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Products: products, Transactions: transactions}, nil
}
