package importers

// Column declares one expected spreadsheet column. Label is matched against
// the header row ignoring case and surrounding whitespace.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Validate checks that sheet has data and carries every required column.
// It returns ErrEmptySheet, a *SchemaError naming all missing labels in
// declaration order, or nil.
func Validate(sheet *Sheet, columns []Column) error {
	if sheet == nil || len(sheet.Rows) == 0 {
		return ErrEmptySheet
	}

	present := make(map[string]bool, len(sheet.Headers))
	for _, h := range sheet.Headers {
		present[NormalizeKey(h)] = true
	}

	var missing []string
	reported := make(map[string]bool)
	for _, col := range columns {
		if !col.Required {
			continue
		}
		key := NormalizeKey(col.Label)
		if present[key] || reported[key] {
			continue
		}
		reported[key] = true
		missing = append(missing, col.Label)
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
