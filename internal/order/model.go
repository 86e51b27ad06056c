package order

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/comandas/internal/pricing"
)

// PaymentMethod is how the customer pays. An order may combine several.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Efectivo"
	PaymentQR   PaymentMethod = "QR"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentQR
}

// Extra is an add-on chosen for a line item. Its price is a snapshot taken
// when it was selected; later menu changes do not affect it.
type Extra struct {
	Product string          `json:"product" binding:"required" example:"Queso"`
	Price   decimal.Decimal `json:"price"   swaggertype:"string" example:"5.00"`
}

// LineItem is one configured product in an order.
// Field names follow the JSON the order form has always sent.
type LineItem struct {
	Product        string          `json:"product"        binding:"required" example:"Hamburguesa"`
	Description    string          `json:"description"`
	SelectedOption string          `json:"selectedOption" example:"Sencilla"`
	SelectedPrice  decimal.Decimal `json:"selectedPrice"  swaggertype:"string" example:"50.00"`
	Extras         []Extra         `json:"extras"         binding:"omitempty,dive"`
	Comments       string          `json:"comments,omitempty"`
	Quantity       int             `json:"quantity"       binding:"min=1" example:"1"`
	FinalPrice     decimal.Decimal `json:"finalPrice"     swaggertype:"string" example:"55.00"`
}

func (li LineItem) extraPrices() []decimal.Decimal {
	out := make([]decimal.Decimal, len(li.Extras))
	for i, e := range li.Extras {
		out[i] = e.Price
	}
	return out
}

// UnitPrice is the selected option price plus all extras.
func (li LineItem) UnitPrice() (decimal.Decimal, error) {
	return pricing.UnitPrice(li.SelectedPrice, li.extraPrices())
}

// Reprice sets FinalPrice from the selected price, extras and quantity.
func (li *LineItem) Reprice() error {
	p, err := pricing.LinePrice(li.SelectedPrice, li.extraPrices(), li.Quantity)
	if err != nil {
		return err
	}
	li.FinalPrice = p
	return nil
}

// SameAs reports whether two line items describe the same configured
// product: same product, option and comments, and the same extras in any
// order.
func (li LineItem) SameAs(other LineItem) bool {
	return li.Product == other.Product &&
		li.SelectedOption == other.SelectedOption &&
		li.Comments == other.Comments &&
		extrasKey(li.Extras) == extrasKey(other.Extras)
}

func extrasKey(extras []Extra) string {
	keys := make([]string, len(extras))
	for i, e := range extras {
		keys[i] = e.Product + "\x00" + e.Price.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x01")
}

func (li LineItem) clone() LineItem {
	li.Extras = append([]Extra(nil), li.Extras...)
	return li
}

// Order is a submitted order. It is never modified after it is stored.
type Order struct {
	ID            string          `json:"id"            example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	CreatedAt     time.Time       `json:"createdAt"`
	CustomerName  string          `json:"customerName"  example:"Juan Perez"`
	Address       string          `json:"address"       example:"Calle Falsa 123"`
	Phone         string          `json:"phone"         example:"555-1234"`
	Comments      string          `json:"comments"`
	PaymentMethod []PaymentMethod `json:"paymentMethod"`
	Items         []LineItem      `json:"items"`
	Discount      int             `json:"discount"      example:"10"`
	TotalPrice    decimal.Decimal `json:"totalPrice"    swaggertype:"string" example:"180.00"`
}

// PaidWith reports whether m is one of the order's payment methods.
func (o Order) PaidWith(m PaymentMethod) bool {
	for _, p := range o.PaymentMethod {
		if p == m {
			return true
		}
	}
	return false
}

// Subtotal is the sum of line final prices, before discount.
func (o Order) Subtotal() decimal.Decimal {
	return pricing.Sum(finalPrices(o.Items))
}

func finalPrices(items []LineItem) []decimal.Decimal {
	out := make([]decimal.Decimal, len(items))
	for i, it := range items {
		out[i] = it.FinalPrice
	}
	return out
}
