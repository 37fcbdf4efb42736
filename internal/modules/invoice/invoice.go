// Package invoice turns a recorded transaction into a render-ready tax
// invoice. Rendering needs nothing beyond the transaction and the store's
// static identity, which is what keeps old receipts reprintable after any
// amount of catalog drift.
package invoice

import (
	"fmt"

	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
	"github.com/nujoom-retail/pos-backend/internal/modules/settings"
)

// StoreIdentity is the fixed header printed on every invoice.
type StoreIdentity struct {
	NameEN     string
	NameAR     string
	TaxNumber  string
	CurrencyEN string
	CurrencyAR string
}

// Line is one printed row of the invoice. Amounts are formatted here, at
// display time, never earlier.
type Line struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// Invoice is the complete printable representation of one sale.
type Invoice struct {
	StoreName string `json:"store_name"`
	Title     string `json:"title"`
	TaxNumber string `json:"tax_number"`
	Number    string `json:"number"`
	Date      string `json:"date"`
	Lines     []Line `json:"lines"`
	Subtotal  string `json:"subtotal"`
	VATLabel  string `json:"vat_label"`
	VAT       string `json:"vat"`
	Total     string `json:"total"`
	Currency  string `json:"currency"`
	Footer    string `json:"footer"`
	Barcode   string `json:"barcode"`
}

// Renderer formats invoices for a fixed store identity and tax rate.
type Renderer struct {
	store   StoreIdentity
	taxRate float64
}

func NewRenderer(store StoreIdentity, taxRate float64) *Renderer {
	return &Renderer{store: store, taxRate: taxRate}
}

// Render produces the invoice for tx in the given language.
func (r *Renderer) Render(tx *ledger.Transaction, lang settings.Language) *Invoice {
	arabic := lang == settings.LanguageArabic

	inv := &Invoice{
		TaxNumber: r.store.TaxNumber,
		Number:    suffix(tx.ID, 8),
		Date:      tx.Date.Local().Format("02/01/2006 15:04"),
		Subtotal:  money(tx.Subtotal),
		VAT:       money(tx.VAT),
		Total:     money(tx.Total),
		Barcode:   suffix(tx.ID, 6),
	}

	if arabic {
		inv.StoreName = r.store.NameAR
		inv.Title = "فاتورة ضريبية"
		inv.VATLabel = fmt.Sprintf("الضريبة (%.0f%%)", r.taxRate*100)
		inv.Currency = r.store.CurrencyAR
		inv.Footer = "شكراً لتسوقكم معنا!"
	} else {
		inv.StoreName = r.store.NameEN
		inv.Title = "INVOICE"
		inv.VATLabel = fmt.Sprintf("VAT (%.0f%%)", r.taxRate*100)
		inv.Currency = r.store.CurrencyEN
		inv.Footer = "Thank you for shopping!"
	}

	for _, item := range tx.Items {
		name := item.NameEN
		if arabic {
			name = item.NameAR
		}
		inv.Lines = append(inv.Lines, Line{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: money(item.Price),
			LineTotal: money(item.Price * float64(item.Quantity)),
		})
	}
	return inv
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }

func suffix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
