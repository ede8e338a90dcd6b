package exporters

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/utils"
)

// InvoiceFileName is <number>.pdf.
func InvoiceFileName(inv entities.Invoice) string {
	return utils.SanitizeFilename(inv.Number, "-") + ".pdf"
}

// WriteInvoice renders a single invoice document issued by the company in
// issuer, whose tax rate labels the VAT line.
func WriteInvoice(w io.Writer, inv entities.Invoice, issuer entities.Settings, now time.Time) error {
	doc := newDocument("P", now)

	if issuer.CompanyName != "" {
		doc.line("B", 12, issuer.CompanyName)
		for _, l := range []string{issuer.CompanyAddress, issuer.CompanyEmail, issuer.CompanyPhone} {
			if l != "" {
				doc.line("", 9, l)
			}
		}
		if issuer.TaxID != "" {
			doc.line("", 9, "NINEA: "+issuer.TaxID)
		}
		doc.gap(4)
	}

	doc.title("FACTURE")
	doc.line("B", 12, inv.Number)
	doc.line("", 10, "Date: "+FormatDate(inv.Date))
	doc.line("", 10, "Échéance: "+FormatDate(inv.DueDate))
	doc.line("", 10, "Statut: "+string(inv.Status))
	doc.gap(6)

	doc.line("B", 11, "Facturé à")
	doc.line("", 10, inv.ClientName)
	if inv.ClientEmail != "" {
		doc.line("", 10, inv.ClientEmail)
	}
	doc.gap(6)

	rows := make([][]string, len(inv.Items))
	for i, item := range inv.Items {
		rows[i] = []string{
			item.Description,
			strconv.Itoa(item.Quantity),
			FormatAmount(item.UnitPrice),
			FormatAmount(item.Total),
		}
	}
	doc.table(
		[]string{"Description", "Quantité", "Prix unitaire", "Total"},
		[]float64{80, 25, 37.5, 37.5},
		rows,
		[]string{"L", "C", "R", "R"},
	)
	doc.gap(4)

	rate := issuer.TaxRate.Mul(decimal.NewFromInt(100)).String()
	totals := []struct {
		label string
		value int64
		bold  bool
	}{
		{"Sous-total", inv.Subtotal, false},
		{fmt.Sprintf("TVA (%s%%)", rate), inv.Tax, false},
		{"Total", inv.Total, true},
	}
	for _, t := range totals {
		style := ""
		if t.bold {
			style = "B"
		}
		doc.pdf.SetFont("Helvetica", style, 10)
		doc.pdf.CellFormat(142.5, 7, doc.tr(t.label), "", 0, "R", false, 0, "")
		doc.pdf.CellFormat(37.5, 7, doc.tr(FormatAmount(t.value)), "", 1, "R", false, 0, "")
	}

	if inv.Notes != "" {
		doc.gap(6)
		doc.line("B", 10, "Notes")
		doc.pdf.SetFont("Helvetica", "", 10)
		doc.pdf.MultiCell(0, 5, doc.tr(inv.Notes), "", "L", false)
	}

	return doc.write(w)
}
