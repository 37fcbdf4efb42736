package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
)

type mockLedger struct {
	txs []*ledger.Transaction
}

func (m *mockLedger) Append(_ context.Context, tx *ledger.Transaction) error {
	m.txs = append(m.txs, tx)
	return nil
}

func (m *mockLedger) List(_ context.Context) ([]*ledger.Transaction, error) {
	return m.txs, nil
}

func (m *mockLedger) GetByID(_ context.Context, id string) (*ledger.Transaction, error) {
	for _, tx := range m.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, ledger.ErrTransactionNotFound
}

func txOn(day time.Time, total float64) *ledger.Transaction {
	return &ledger.Transaction{
		ID:    fmt.Sprintf("%d", day.UnixMilli()),
		Date:  day,
		Total: total,
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	svc := NewService(&mockLedger{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalTransactions)
	assert.Empty(t, summary.DailySales)
}

func TestSummaryThreeDays(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	repo := &mockLedger{txs: []*ledger.Transaction{
		txOn(base, 100),
		txOn(base.AddDate(0, 0, 1), 200),
		txOn(base.AddDate(0, 0, 2), 50),
	}}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 350, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 3, summary.TotalTransactions)
	require.Len(t, summary.DailySales, 3)
	assert.Equal(t, "2025-06-01", summary.DailySales[0].Date)
	assert.Equal(t, "2025-06-02", summary.DailySales[1].Date)
	assert.Equal(t, "2025-06-03", summary.DailySales[2].Date)
	assert.InDelta(t, 200, summary.DailySales[1].Amount, 1e-9)
}

func TestSummaryGroupsSameDay(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	repo := &mockLedger{txs: []*ledger.Transaction{
		txOn(base, 100),
		txOn(base.Add(5*time.Hour), 40),
	}}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.DailySales, 1)
	assert.InDelta(t, 140, summary.DailySales[0].Amount, 1e-9)
	assert.Equal(t, 2, summary.TotalTransactions)
}

func TestSummaryCapsAtSevenMostRecentDates(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	repo := &mockLedger{}
	for i := 0; i < 10; i++ {
		repo.txs = append(repo.txs, txOn(base.AddDate(0, 0, i), 10))
	}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.DailySales, 7)
	assert.Equal(t, "2025-06-04", summary.DailySales[0].Date)
	assert.Equal(t, "2025-06-10", summary.DailySales[6].Date)
	// whole-ledger aggregates are not windowed
	assert.InDelta(t, 100, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 10, summary.TotalTransactions)
}

func TestSummaryDatesWithNoSalesAreAbsent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	repo := &mockLedger{txs: []*ledger.Transaction{
		txOn(base, 10),
		txOn(base.AddDate(0, 0, 4), 20),
	}}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.DailySales, 2)
	assert.Equal(t, "2025-06-01", summary.DailySales[0].Date)
	assert.Equal(t, "2025-06-05", summary.DailySales[1].Date)
}
