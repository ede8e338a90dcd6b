package importers

import (
	"slices"
	"strings"
)

// NormalizeKey lower-cases a header and trims it, collapsing inner whitespace runs.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}

// NormalizeRow returns a copy of row keyed by normalized headers. When two
// headers collapse onto the same key, the first non-blank value in sorted
// header order wins.
func NormalizeRow(row Row) Row {
	out := make(Row, len(row))
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		key := NormalizeKey(k)
		if existing, ok := out[key]; ok && strings.TrimSpace(existing) != "" {
			continue
		}
		out[key] = row[k]
	}
	return out
}

// NormalizeRows applies NormalizeRow to every row.
func NormalizeRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = NormalizeRow(row)
	}
	return out
}
