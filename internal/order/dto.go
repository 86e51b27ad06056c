package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the order payload sent by the order form.
// Line prices are recomputed from selectedPrice, extras and quantity, and the
// total from the lines; the totalPrice sent by the client is ignored.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName  string          `json:"customerName"  binding:"required" example:"Juan Perez"`
	Address       string          `json:"address"       binding:"required" example:"Calle Falsa 123"`
	Phone         string          `json:"phone"         example:"555-1234"`
	Comments      string          `json:"comments"`
	PaymentMethod []PaymentMethod `json:"paymentMethod" binding:"required,min=1,dive,oneof=Efectivo QR"`
	Items         []LineItem      `json:"items"         binding:"required,min=1,dive"`
	Discount      int             `json:"discount"      binding:"oneof=0 5 10 15 20 25" example:"0"`
	TotalPrice    decimal.Decimal `json:"totalPrice"    swaggertype:"string"`
}

// Order converts the request, repricing every line.
func (r CreateOrderRequest) Order() (Order, error) {
	o := Order{
		CustomerName:  r.CustomerName,
		Address:       r.Address,
		Phone:         r.Phone,
		Comments:      r.Comments,
		PaymentMethod: append([]PaymentMethod(nil), r.PaymentMethod...),
		Items:         make([]LineItem, len(r.Items)),
		Discount:      r.Discount,
	}
	for i, it := range r.Items {
		it = it.clone()
		if it.Extras == nil {
			it.Extras = []Extra{}
		}
		if err := it.Reprice(); err != nil {
			return Order{}, ValidationError{Field: fmt.Sprintf("items[%d]", i), Message: err.Error()}
		}
		o.Items[i] = it
	}
	return o, nil
}

// AddItemRequest selects a menu product for a draft or a quote.
// swagger:model AddItemRequest
type AddItemRequest struct {
	MenuItemID string        `json:"menuItemId" binding:"required" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Option     string        `json:"option"     example:"Sencilla"`
	Extras     []ExtraChoice `json:"extras"     binding:"omitempty,dive"`
	Comments   string        `json:"comments"`
}

// QuoteRequest prices a menu selection without adding it anywhere.
// swagger:model QuoteRequest
type QuoteRequest struct {
	AddItemRequest
	Quantity int `json:"quantity" binding:"omitempty,min=1" example:"2"`
}

// QuoteResponse is the priced selection.
// swagger:model QuoteResponse
type QuoteResponse struct {
	Item      LineItem        `json:"item"`
	UnitPrice decimal.Decimal `json:"unitPrice" swaggertype:"string"`
}

// UpdateDraftRequest changes the customer block, payment or discount of a
// draft. Omitted fields are left as they are.
// swagger:model UpdateDraftRequest
type UpdateDraftRequest struct {
	CustomerName  *string          `json:"customerName"`
	Address       *string          `json:"address"`
	Phone         *string          `json:"phone"`
	Comments      *string          `json:"comments"`
	PaymentMethod *[]PaymentMethod `json:"paymentMethod" binding:"omitempty,dive,oneof=Efectivo QR"`
	Discount      *int             `json:"discount"      binding:"omitempty,oneof=0 5 10 15 20 25"`
}

// Apply copies the present fields onto d. Values are checked when the request
// is bound; the draft is validated again when it is submitted.
func (r UpdateDraftRequest) Apply(d *Draft) {
	if r.CustomerName != nil {
		d.CustomerName = *r.CustomerName
	}
	if r.Address != nil {
		d.Address = *r.Address
	}
	if r.Phone != nil {
		d.Phone = *r.Phone
	}
	if r.Comments != nil {
		d.Comments = *r.Comments
	}
	if r.PaymentMethod != nil {
		d.PaymentMethod = append([]PaymentMethod{}, *r.PaymentMethod...)
	}
	if r.Discount != nil {
		d.Discount = *r.Discount
	}
	d.touch()
}

// QuantityRequest sets the quantity of a draft line.
// swagger:model QuantityRequest
type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=1" example:"3"`
}

// DraftView is a draft with its running totals.
// swagger:model DraftView
type DraftView struct {
	Draft
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Total    decimal.Decimal `json:"total"    swaggertype:"string"`
}

// ViewOf computes the totals for d.
func ViewOf(d Draft) DraftView {
	v := DraftView{Draft: d, Subtotal: d.Subtotal()}
	if total, err := d.Total(); err == nil {
		v.Total = total
	} else {
		v.Total = v.Subtotal
	}
	return v
}
