package entities

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Brouillon"
	InvoiceSent      InvoiceStatus = "Envoyée"
	InvoicePaid      InvoiceStatus = "Payée"
	InvoiceOverdue   InvoiceStatus = "En retard"
	InvoiceCancelled InvoiceStatus = "Annulée"
)

// DefaultTaxRate is the VAT rate applied to invoice subtotals.
var DefaultTaxRate = decimal.RequireFromString("0.18")

type InvoiceItem struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Total       int64  `json:"total"`
}

type Invoice struct {
	Model
	Number      string        `json:"invoice_number"`
	ClientID    int           `json:"client_id"`
	ClientName  string        `json:"client_name" binding:"required"`
	ClientEmail string        `json:"client_email,omitempty"`
	Date        string        `json:"date"`
	DueDate     string        `json:"due_date"`
	Items       []InvoiceItem `json:"items"`
	Subtotal    int64         `json:"subtotal"`
	Tax         int64         `json:"tax"`
	Total       int64         `json:"total"`
	Status      InvoiceStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
}

// Clone returns a copy that shares no items with inv.
func (inv *Invoice) Clone() Invoice {
	out := *inv
	out.Items = slices.Clone(inv.Items)
	return out
}

// Recalculate derives line totals, subtotal, tax and grand total from the items.
// Tax is rounded half away from zero to the currency unit.
func (inv *Invoice) Recalculate(rate decimal.Decimal) {
	var subtotal int64
	for i := range inv.Items {
		item := &inv.Items[i]
		if item.ID == 0 {
			item.ID = i + 1
		}
		item.Total = int64(item.Quantity) * item.UnitPrice
		subtotal += item.Total
	}
	inv.Subtotal = subtotal
	inv.Tax = decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
	inv.Total = inv.Subtotal + inv.Tax
}

// FormatInvoiceNumber renders numbers like FAC-2024-001.
func FormatInvoiceNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}
