package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const Symbol = "₹"

// FromFloat converts a catalog price to a decimal without binary float noise
// (599.99 stays 599.99).
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Format renders amount in rupees with two decimals and Indian digit
// grouping: 1234567.5 becomes "₹12,34,567.50".
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	fixed := rounded.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	return sign + Symbol + group(intPart) + "." + frac
}

// group inserts commas after the last three digits, then every two.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}

	return strings.Join(parts, ",") + "," + tail
}
