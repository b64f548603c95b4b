// Package money handles the storefront's integer currency amounts.
// Prices travel as display strings such as "₴1 299"; no fractional units exist.
package money

import (
	"strconv"
	"strings"
)

// ParseAmount keeps only ASCII digits and parses the result, returning 0 when nothing usable remains.
func ParseAmount(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Format renders amount with the currency symbol prefixed, e.g. "₴289".
func Format(amount int64, symbol string) string {
	return symbol + strconv.FormatInt(amount, 10)
}
