package invoice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nujoom-retail/pos-backend/internal/modules/cart"
	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
	"github.com/nujoom-retail/pos-backend/internal/modules/settings"
)

func testRenderer() *Renderer {
	return NewRenderer(StoreIdentity{
		NameEN:     "Al-Nujoom Supermarket",
		NameAR:     "سوبر ماركت النجوم",
		TaxNumber:  "123456789012345",
		CurrencyEN: "AED",
		CurrencyAR: "درهم",
	}, 0.05)
}

func testTransaction() *ledger.Transaction {
	return &ledger.Transaction{
		ID:   "1741944413000",
		Date: time.Date(2025, 3, 14, 9, 26, 0, 0, time.Local),
		Items: []cart.Item{
			{ProductID: uuid.New(), Barcode: "123456", NameEN: "Apple", NameAR: "تفاح", Price: 5.50, Quantity: 2},
			{ProductID: uuid.New(), Barcode: "901234", NameEN: "Bread", NameAR: "خبز", Price: 3.50, Quantity: 1},
		},
		Subtotal: 14.50,
		VAT:      0.73,
		Total:    15.23,
	}
}

func TestRenderEnglish(t *testing.T) {
	inv := testRenderer().Render(testTransaction(), settings.LanguageEnglish)

	assert.Equal(t, "Al-Nujoom Supermarket", inv.StoreName)
	assert.Equal(t, "INVOICE", inv.Title)
	assert.Equal(t, "123456789012345", inv.TaxNumber)
	assert.Equal(t, "VAT (5%)", inv.VATLabel)
	assert.Equal(t, "AED", inv.Currency)

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "Apple", inv.Lines[0].Name)
	assert.Equal(t, 2, inv.Lines[0].Quantity)
	assert.Equal(t, "5.50", inv.Lines[0].UnitPrice)
	assert.Equal(t, "11.00", inv.Lines[0].LineTotal)

	assert.Equal(t, "14.50", inv.Subtotal)
	assert.Equal(t, "0.73", inv.VAT)
	assert.Equal(t, "15.23", inv.Total)
}

func TestRenderArabic(t *testing.T) {
	inv := testRenderer().Render(testTransaction(), settings.LanguageArabic)

	assert.Equal(t, "سوبر ماركت النجوم", inv.StoreName)
	assert.Equal(t, "تفاح", inv.Lines[0].Name)
	assert.Equal(t, "خبز", inv.Lines[1].Name)
	assert.Equal(t, "درهم", inv.Currency)
}

func TestRenderIdentifiers(t *testing.T) {
	inv := testRenderer().Render(testTransaction(), settings.LanguageEnglish)

	assert.Equal(t, "44413000", inv.Number)
	assert.Equal(t, "413000", inv.Barcode)
}

func TestRenderShortID(t *testing.T) {
	tx := testTransaction()
	tx.ID = "42"
	inv := testRenderer().Render(tx, settings.LanguageEnglish)

	assert.Equal(t, "42", inv.Number)
	assert.Equal(t, "42", inv.Barcode)
}
