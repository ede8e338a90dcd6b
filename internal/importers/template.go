package importers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	templateSheet = "Template"
	requiredLabel = "Requis"
	optionalLabel = "Optionnel"
)

// TemplateFileName is the download name of the template for an entity.
func TemplateFileName(name string) string {
	return "template-" + name + ".xlsx"
}

// WriteTemplate writes a workbook with one "Template" sheet: the column labels
// on row 1 and whether each column is required on row 2.
func WriteTemplate(w io.Writer, columns []Column) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return fmt.Errorf("rename template sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		hint := optionalLabel
		if col.Required {
			hint = requiredLabel
		}
		if err := f.SetCellStr(templateSheet, name+"1", col.Label); err != nil {
			return err
		}
		if err := f.SetCellStr(templateSheet, name+"2", hint); err != nil {
			return err
		}
		if err := f.SetColWidth(templateSheet, name, name, float64(max(len(col.Label), len(hint))+4)); err != nil {
			return err
		}
	}

	if len(columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(columns))
		if err := f.SetCellStyle(templateSheet, "A1", last+"1", bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}
