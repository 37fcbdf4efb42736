package report

import (
	"context"
	"sort"

	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
)

// maxSeriesDays caps the daily chart at the most recent distinct sale dates.
const maxSeriesDays = 7

// DailySales is one bar of the daily revenue chart.
type DailySales struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Summary is the render-ready aggregate for the reports screen.
type Summary struct {
	TotalRevenue      float64      `json:"total_revenue"`
	TotalTransactions int          `json:"total_transactions"`
	DailySales        []DailySales `json:"daily_sales"`
}

// Service derives report aggregates from the transaction history.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct{ ledger ledger.Repository }

func NewService(ledgerRepo ledger.Repository) Service {
	return &service{ledger: ledgerRepo}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalTransactions: len(txs)}

	// Dates with no sales are simply absent from the series, not zero.
	byDate := make(map[string]float64)
	for _, tx := range txs {
		summary.TotalRevenue += tx.Total
		date := tx.Date.Local().Format("2006-01-02")
		byDate[date] += tx.Total
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > maxSeriesDays {
		dates = dates[len(dates)-maxSeriesDays:]
	}

	for _, date := range dates {
		summary.DailySales = append(summary.DailySales, DailySales{Date: date, Amount: byDate[date]})
	}
	return summary, nil
}
