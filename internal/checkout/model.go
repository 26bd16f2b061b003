package checkout

import (
	"time"

	"boldstore-be/internal/cart"

	"github.com/shopspring/decimal"
)

const StorageKey = "checkout"

// EstimatedDelivery is quoted on every confirmation.
const EstimatedDelivery = "3-5 business days"

type Step string

const (
	StepAddress      Step = "address"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

type Address struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Street    string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,len=6,numeric"`
	State     string `json:"state" validate:"required"`
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
}

// Payment is the card form. It is validated and then discarded; only the
// last four digits end up on the order.
type Payment struct {
	CardName   string `json:"cardName" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,credit_card"`
	Expiry     string `json:"expiry" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4,numeric"`
}

type Order struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	Items             []cart.LineItem `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Shipping          decimal.Decimal `json:"shipping"`
	Total             decimal.Decimal `json:"total"`
	ShipTo            Address         `json:"shipTo"`
	CardLast4         string          `json:"cardLast4"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	PlacedAt          time.Time       `json:"placedAt"`
}

// state is what is persisted between steps.
type state struct {
	Step    Step     `json:"step"`
	Address *Address `json:"address,omitempty"`
	Order   *Order   `json:"order,omitempty"`
}

// View is the checkout screen: the current step plus the cart it is for.
type View struct {
	Step    Step
	Address *Address
	Order   *Order
	Cart    cart.Summary
}
