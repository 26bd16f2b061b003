package cart

import (
	"boldstore-be/internal/catalog"

	"github.com/shopspring/decimal"
)

// StorageKey is where a session's cart lives. The value is a JSON array of
// {"product": {...}, "quantity": n}.
const StorageKey = "cart"

// LineItem is one product and how many of it the cart holds.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price × quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(li.Product.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Summary is the cart as the cart and checkout screens show it.
type Summary struct {
	Items    []LineItem
	Count    int
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}
