package exporters

import (
	"fmt"
	"time"
)

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// ParseFormat accepts "pdf", "xlsx" and "excel".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Column projects one field of T into a cell. Value returns a string, an
// integer type or a float; numbers stay numeric in Excel.
type Column[T any] struct {
	Header string
	// Width is in millimetres for PDF and characters for Excel.
	Width float64
	Value func(T) any
}

// Projection describes how records of one entity are exported.
type Projection[T any] struct {
	Title     string
	SheetName string
	Prefix    string
	PDF       []Column[T]
	Excel     []Column[T]
}

// Table is a rendered projection, ready for either formatter.
type Table struct {
	Title     string
	SheetName string
	Headers   []string
	Widths    []float64
	Rows      [][]any
}

func (p Projection[T]) Table(records []T, columns []Column[T]) Table {
	t := Table{
		Title:     p.Title,
		SheetName: p.SheetName,
		Headers:   make([]string, len(columns)),
		Widths:    make([]float64, len(columns)),
		Rows:      make([][]any, 0, len(records)),
	}
	for i, col := range columns {
		t.Headers[i] = col.Header
		t.Widths[i] = col.Width
	}
	for _, rec := range records {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = col.Value(rec)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Render builds the table for format, using the PDF or Excel column set.
func (p Projection[T]) Render(records []T, format Format) Table {
	if format == FormatPDF {
		return p.Table(records, p.PDF)
	}
	return p.Table(records, p.Excel)
}

// FileName is <prefix>-<YYYY-MM-DD>.<ext>.
func (p Projection[T]) FileName(format Format, now time.Time) string {
	return FileName(p.Prefix, format, now)
}

func FileName(prefix string, format Format, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("2006-01-02"), format)
}
