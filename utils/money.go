package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountToFloat converts a decimal amount to the float64 the models persist
// in their decimal(10,2) columns.
func AmountToFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// FormatCurrency renders an amount with thousand separators, e.g. 1.234,50
func FormatCurrency(d decimal.Decimal) string {
	fixed := d.Round(2).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	parts := strings.Split(fixed, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := strings.Join(groups, ".") + "," + decimalPart
	if neg {
		out = "-" + out
	}
	return out
}
