package exporters

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CurrencyLabel is appended to formatted amounts.
var CurrencyLabel = "FCFA"

// FormatAmount renders whole XOF with space-grouped thousands: "650 000 FCFA".
func FormatAmount(n int64) string {
	return groupDigits(n) + " " + CurrencyLabel
}

func groupDigits(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatDate turns an ISO day into DD/MM/YYYY; anything else is returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case interface{ String() string }:
		return x.String()
	}
	return fmt.Sprint(v)
}
