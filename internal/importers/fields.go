package importers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Text returns the first non-blank value among the given normalized keys, trimmed.
func (r Row) Text(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

// TextOr is Text with a fallback for blank cells.
func (r Row) TextOr(def string, keys ...string) string {
	if v := r.Text(keys...); v != "" {
		return v
	}
	return def
}

// Int reads a whole number, returning def when the cell is blank or not numeric.
func (r Row) Int(def int, keys ...string) int {
	if n, ok := ParseAmount(r.Text(keys...)); ok {
		return int(n)
	}
	return def
}

// Amount reads a money value in currency units, returning def when blank or invalid.
func (r Row) Amount(def int64, keys ...string) int64 {
	if n, ok := ParseAmount(r.Text(keys...)); ok {
		return n
	}
	return def
}

var currencyTokens = strings.NewReplacer(
	"fcfa", "", "f cfa", "", "xof", "", "cfa", "",
	" ", "", "\u00a0", "", "\u202f", "", "'", "",
)

// ParseAmount reads numbers as typed by people and spreadsheets:
// "125,000 FCFA", "1 250 000", "450000", "12,5", "1.234,50".
// Fractions are rounded to the nearest unit.
func ParseAmount(s string) (int64, bool) {
	s = currencyTokens.Replace(strings.ToLower(strings.TrimSpace(s)))
	if s == "" {
		return 0, false
	}

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			// 1.234,50
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 1,234.50
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 || len(s)-comma-1 == 3 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case dot >= 0 && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.Round(0).IntPart(), true
}
