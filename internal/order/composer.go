package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/comandas/internal/menu"
	"github.com/MikeMC777/comandas/internal/pricing"
)

var (
	ErrIndexOutOfRange = errors.New("line item index out of range")
	ErrUnknownOption   = errors.New("unknown menu option")
	ErrUnknownExtra    = errors.New("unknown extra")
)

// ExtraChoice names an extra by product, and optionally one of its options.
// Without an option the extra's first option is used.
type ExtraChoice struct {
	Product string `json:"product" binding:"required" example:"Queso"`
	Option  string `json:"option,omitempty"`
}

// NewLineItem builds a single-unit line item for a menu product, copying the
// current option and extra prices out of the menu.
func NewLineItem(catalog []menu.MenuItem, item menu.MenuItem, option string, extras []ExtraChoice, comments string) (LineItem, error) {
	if option == "" && len(item.Options) > 0 {
		option = item.Options[0].Type
	}
	opt, ok := item.Option(option)
	if !ok {
		return LineItem{}, fmt.Errorf("%w: %s has no option %q", ErrUnknownOption, item.Product, option)
	}

	li := LineItem{
		Product:        item.Product,
		Description:    item.Description,
		SelectedOption: opt.Type,
		SelectedPrice:  opt.Price,
		Extras:         []Extra{},
		Comments:       strings.TrimSpace(comments),
		Quantity:       1,
	}
	for _, ch := range extras {
		ex, ok := menu.FindExtra(catalog, ch.Product)
		if !ok || len(ex.Options) == 0 {
			return LineItem{}, fmt.Errorf("%w: %q", ErrUnknownExtra, ch.Product)
		}
		exOpt := ex.Options[0]
		if ch.Option != "" {
			if exOpt, ok = ex.Option(ch.Option); !ok {
				return LineItem{}, fmt.Errorf("%w: extra %s has no option %q", ErrUnknownOption, ex.Product, ch.Option)
			}
		}
		li.Extras = append(li.Extras, Extra{Product: ex.Product, Price: exOpt.Price})
	}
	if err := li.Reprice(); err != nil {
		return LineItem{}, err
	}
	return li, nil
}

// Draft is an order being put together at the counter. All changes go
// through its methods; the zero value is an empty draft.
type Draft struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Comments      string          `json:"comments"`
	PaymentMethod []PaymentMethod `json:"paymentMethod"`
	Items         []LineItem      `json:"items"`
	Discount      int             `json:"discount"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// AddItem adds one unit of item. If an equal line already exists its
// quantity grows by one and item's price is added to its final price;
// otherwise item is appended with quantity 1. It returns the index of the
// affected line.
func (d *Draft) AddItem(item LineItem) (int, error) {
	item = item.clone()
	item.Quantity = 1
	if err := item.Reprice(); err != nil {
		return -1, err
	}

	for i := range d.Items {
		if d.Items[i].SameAs(item) {
			d.Items[i].Quantity++
			d.Items[i].FinalPrice = d.Items[i].FinalPrice.Add(item.FinalPrice)
			d.touch()
			return i, nil
		}
	}
	d.Items = append(d.Items, item)
	d.touch()
	return len(d.Items) - 1, nil
}

// RemoveItem drops the line at index and returns it.
func (d *Draft) RemoveItem(index int) (LineItem, error) {
	if index < 0 || index >= len(d.Items) {
		return LineItem{}, ErrIndexOutOfRange
	}
	removed := d.Items[index]
	d.Items = append(d.Items[:index:index], d.Items[index+1:]...)
	d.touch()
	return removed, nil
}

// SetQuantity changes the quantity of the line at index, repricing it from
// its unit price. It returns how much the draft subtotal changed.
func (d *Draft) SetQuantity(index, quantity int) (decimal.Decimal, error) {
	if index < 0 || index >= len(d.Items) {
		return decimal.Zero, ErrIndexOutOfRange
	}
	li := &d.Items[index]
	unit, err := li.UnitPrice()
	if err != nil {
		return decimal.Zero, err
	}
	final, _, err := pricing.AdjustQuantity(unit, li.Quantity, quantity)
	if err != nil {
		return decimal.Zero, err
	}
	delta := final.Sub(li.FinalPrice)
	li.Quantity = quantity
	li.FinalPrice = final
	d.touch()
	return delta, nil
}

// Reset clears customer data, items and discount. The id is kept.
func (d *Draft) Reset() {
	*d = Draft{ID: d.ID, Items: []LineItem{}, PaymentMethod: []PaymentMethod{}}
	d.touch()
}

// Subtotal is the sum of the line final prices.
func (d *Draft) Subtotal() decimal.Decimal {
	return pricing.Sum(finalPrices(d.Items))
}

// Total applies the draft discount to Subtotal.
func (d *Draft) Total() (decimal.Decimal, error) {
	return pricing.OrderTotal(finalPrices(d.Items), d.Discount)
}

// Order copies the draft into an order ready to submit.
func (d *Draft) Order() Order {
	o := Order{
		CustomerName:  d.CustomerName,
		Address:       d.Address,
		Phone:         d.Phone,
		Comments:      d.Comments,
		PaymentMethod: append([]PaymentMethod(nil), d.PaymentMethod...),
		Items:         make([]LineItem, len(d.Items)),
		Discount:      d.Discount,
	}
	for i, it := range d.Items {
		o.Items[i] = it.clone()
	}
	return o
}

func (d *Draft) clone() Draft {
	c := *d
	c.PaymentMethod = append([]PaymentMethod(nil), d.PaymentMethod...)
	c.Items = make([]LineItem, len(d.Items))
	for i, it := range d.Items {
		c.Items[i] = it.clone()
	}
	return c
}

func (d *Draft) touch() { d.UpdatedAt = time.Now().UTC() }
