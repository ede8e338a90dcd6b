package exporters

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	pageMargin = 15.0
	rowHeight  = 8.0
)

// Header fill used by every table.
var headerFill = [3]int{99, 102, 241}

// document wraps gofpdf with a cp1252 translator so accented labels render
// with the core fonts.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument(orientation string, now time.Time) *document {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetCatalogSort(true)
	pdf.AddPage()
	return &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *document) line(style string, size float64, text string) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *document) gap(h float64) {
	d.pdf.Ln(h)
}

// table draws a filled header row followed by gridded body rows. The header
// is repeated after a page break.
func (d *document) table(headers []string, widths []float64, rows [][]string, aligns []string) {
	drawHeader := func() {
		d.pdf.SetFont("Helvetica", "B", 10)
		d.pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
		d.pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			d.pdf.CellFormat(widths[i], rowHeight, d.tr(h), "1", 0, "C", true, 0, "")
		}
		d.pdf.Ln(-1)
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.SetTextColor(0, 0, 0)
	}

	drawHeader()
	_, pageHeight := d.pdf.GetPageSize()
	for _, row := range rows {
		if d.pdf.GetY()+rowHeight > pageHeight-pageMargin {
			d.pdf.AddPage()
			drawHeader()
		}
		for i, cell := range row {
			align := "L"
			if i < len(aligns) && aligns[i] != "" {
				align = aligns[i]
			}
			d.pdf.CellFormat(widths[i], rowHeight, d.fit(cell, widths[i]), "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *document) write(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// fit translates text to cp1252 and truncates it when it would overflow a
// cell of width mm. Widths are measured on the translated bytes, the ones the
// core fonts render.
func (d *document) fit(text string, width float64) string {
	limit := width - 2
	out := d.tr(text)
	if d.pdf.GetStringWidth(out) <= limit {
		return out
	}
	// cp1252 is single-byte, so byte slicing never splits a character.
	for len(out) > 0 && d.pdf.GetStringWidth(out+"...") > limit {
		out = out[:len(out)-1]
	}
	return out + "..."
}

// scaleWidths stretches or shrinks widths to fill the printable width.
func scaleWidths(widths []float64, available float64) []float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	out := make([]float64, len(widths))
	if total == 0 {
		for i := range out {
			out[i] = available / float64(len(widths))
		}
		return out
	}
	for i, w := range widths {
		out[i] = w * available / total
	}
	return out
}

// WritePDF renders t as a titled, dated table. Wide tables use landscape pages.
func WritePDF(w io.Writer, t Table, now time.Time) error {
	orientation := "P"
	if len(t.Headers) > 6 {
		orientation = "L"
	}
	doc := newDocument(orientation, now)

	doc.title(t.Title)
	doc.line("", 10, "Date: "+now.Format("02/01/2006"))
	doc.gap(4)

	if len(t.Headers) > 0 {
		pageWidth, _ := doc.pdf.GetPageSize()
		widths := scaleWidths(t.Widths, pageWidth-2*pageMargin)
		rows := make([][]string, len(t.Rows))
		for i, r := range t.Rows {
			rows[i] = make([]string, len(r))
			for j, v := range r {
				rows[i][j] = cellText(v)
			}
		}
		doc.table(t.Headers, widths, rows, nil)
	}

	return doc.write(w)
}
