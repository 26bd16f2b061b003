package api

import (
	"time"

	"boldstore-be/internal/cart"
	"boldstore-be/internal/catalog"
	"boldstore-be/internal/checkout"
	"boldstore-be/internal/filter"
	"boldstore-be/internal/money"

	"github.com/shopspring/decimal"
)

// amount is a price as both a number and its display string.
type amount struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

func newAmount(d decimal.Decimal) amount {
	return amount{Value: d.InexactFloat64(), Formatted: money.Format(d)}
}

type cartItemResponse struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal amount          `json:"lineTotal"`
}

type cartResponse struct {
	Items        []cartItemResponse `json:"items"`
	Count        int                `json:"count"`
	Subtotal     amount             `json:"subtotal"`
	Shipping     amount             `json:"shipping"`
	Total        amount             `json:"total"`
	FreeShipping bool               `json:"freeShipping"`
}

func toCartResponse(s cart.Summary) cartResponse {
	items := make([]cartItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, cartItemResponse{
			Product:   it.Product,
			Quantity:  it.Quantity,
			LineTotal: newAmount(it.LineTotal()),
		})
	}

	return cartResponse{
		Items:        items,
		Count:        s.Count,
		Subtotal:     newAmount(s.Subtotal),
		Shipping:     newAmount(s.Shipping),
		Total:        newAmount(s.Total),
		FreeShipping: s.Shipping.IsZero(),
	}
}

type orderResponse struct {
	ID                string             `json:"id"`
	Number            string             `json:"number"`
	Items             []cartItemResponse `json:"items"`
	Subtotal          amount             `json:"subtotal"`
	Shipping          amount             `json:"shipping"`
	Total             amount             `json:"total"`
	ShipTo            checkout.Address   `json:"shipTo"`
	CardLast4         string             `json:"cardLast4"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
	PlacedAt          time.Time          `json:"placedAt"`
}

func toOrderResponse(o *checkout.Order) *orderResponse {
	if o == nil {
		return nil
	}

	items := toCartResponse(cart.Summary{Items: o.Items}).Items
	return &orderResponse{
		ID:                o.ID,
		Number:            o.Number,
		Items:             items,
		Subtotal:          newAmount(o.Subtotal),
		Shipping:          newAmount(o.Shipping),
		Total:             newAmount(o.Total),
		ShipTo:            o.ShipTo,
		CardLast4:         o.CardLast4,
		EstimatedDelivery: o.EstimatedDelivery,
		PlacedAt:          o.PlacedAt,
	}
}

type checkoutResponse struct {
	Step    checkout.Step     `json:"step"`
	Address *checkout.Address `json:"address,omitempty"`
	Order   *orderResponse    `json:"order,omitempty"`
	Cart    cartResponse      `json:"cart"`
}

func toCheckoutResponse(v checkout.View) checkoutResponse {
	return checkoutResponse{
		Step:    v.Step,
		Address: v.Address,
		Order:   toOrderResponse(v.Order),
		Cart:    toCartResponse(v.Cart),
	}
}

type productListResponse struct {
	Products      []catalog.Product `json:"products"`
	Count         int               `json:"count"`
	Filters       filter.Spec       `json:"filters"`
	ActiveFilters int               `json:"activeFilters"`
}

func toProductList(products []catalog.Product, spec filter.Spec) productListResponse {
	if products == nil {
		products = []catalog.Product{}
	}
	return productListResponse{
		Products:      products,
		Count:         len(products),
		Filters:       spec,
		ActiveFilters: filter.ActiveCount(spec),
	}
}
