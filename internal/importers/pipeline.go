package importers

import (
	"fmt"
)

// Definition describes one importable record type: the columns a sheet is
// expected to carry and the parser turning rows into records.
//
// Implementations:
//   - EmployeeDefinition (employees.go)
//   - ClientDefinition (clients.go)
//   - ProductDefinition (products.go)
//   - TaskDefinition (tasks.go)
//
// Adding a new importable type:
//  1. Create a new file (e.g., suppliers.go)
//  2. Declare its []Column in display order
//  3. Write a RowParser that reads normalized keys and rejects incomplete rows
//  4. Register it with a Session in the workspace that owns the records
type Definition[T any] struct {
	// Kind is the URL/CLI name, e.g. "products".
	Kind string
	// TemplateName names the template download: template-<TemplateName>.xlsx.
	TemplateName string
	Columns      []Column
	Parse        RowParser[T]
}

// Rejection records a row the parser could not turn into a record.
type Rejection struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Apply runs the parser over every row of sheet: normalize, parse, split
// accepted records from rejections. A panicking parser aborts the whole run.
func (d Definition[T]) Apply(sheet *Sheet) (records []T, rejections []Rejection, err error) {
	defer func() {
		if r := recover(); r != nil {
			records, rejections = nil, nil
			err = fmt.Errorf("%s row parser failed: %v", d.Kind, r)
		}
	}()

	records = make([]T, 0, len(sheet.Rows))
	for i, row := range sheet.Rows {
		out := d.Parse(NormalizeRow(row))
		if rec, ok := out.Record(); ok {
			records = append(records, rec)
			continue
		}
		line := i + 2
		if i < len(sheet.Lines) {
			line = sheet.Lines[i]
		}
		rejections = append(rejections, Rejection{Line: line, Reason: out.Reason()})
	}
	return records, rejections, nil
}
