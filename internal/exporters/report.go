package exporters

import (
	"io"
	"strconv"
	"time"

	"github.com/smartwork/dashboard/internal/entities"
)

// Indicator is one line of the global report.
type Indicator struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Report struct {
	Indicators  []Indicator
	TopProducts []entities.Product
}

// ReportFileName is rapport-<YYYY-MM-DD>.pdf.
func ReportFileName(now time.Time) string {
	return FileName("rapport", FormatPDF, now)
}

// WriteReport renders the dashboard indicators and the products holding the
// most stock value.
func WriteReport(w io.Writer, r Report, now time.Time) error {
	doc := newDocument("P", now)

	doc.title("Rapport Global")
	doc.line("", 10, "Date: "+now.Format("02/01/2006"))
	doc.gap(4)

	rows := make([][]string, len(r.Indicators))
	for i, ind := range r.Indicators {
		rows[i] = []string{ind.Label, ind.Value}
	}
	doc.table([]string{"Indicateur", "Valeur"}, []float64{110, 70}, rows, []string{"L", "R"})

	if len(r.TopProducts) > 0 {
		doc.gap(8)
		doc.line("B", 13, "Top Produits")
		doc.gap(2)

		rows = make([][]string, len(r.TopProducts))
		for i, p := range r.TopProducts {
			rows[i] = []string{p.Name, strconv.Itoa(p.Quantity), FormatAmount(p.StockValue()), string(p.Status)}
		}
		doc.table(
			[]string{"Produit", "Quantité", "Valeur du stock", "Statut"},
			[]float64{75, 25, 45, 35},
			rows,
			[]string{"L", "C", "R", "L"},
		)
	}

	return doc.write(w)
}
