package cart

import "github.com/shopspring/decimal"

var (
	FreeShippingThreshold = decimal.NewFromInt(1000)
	FlatShippingFee       = decimal.NewFromInt(99)
)

// Shipping is free only when the subtotal is strictly above the threshold.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

func Total(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(Shipping(subtotal))
}
