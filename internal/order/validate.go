package order

import (
	"fmt"
	"strings"

	"github.com/MikeMC777/comandas/internal/pricing"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks an order before it is priced and stored.
func Validate(o *Order) error {
	if err := validateCustomer(o); err != nil {
		return err
	}
	if err := validatePayment(o.PaymentMethod); err != nil {
		return err
	}
	if err := validateDiscount(o.Discount); err != nil {
		return err
	}
	return validateItems(o.Items)
}

func validateDiscount(pct int) error {
	if !pricing.ValidDiscount(pct) {
		return ValidationError{Field: "discount", Message: pricing.ErrInvalidDiscount.Error()}
	}
	return nil
}

func validateCustomer(o *Order) error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if strings.TrimSpace(o.Address) == "" {
		return ValidationError{Field: "address", Message: "address is required"}
	}
	return nil
}

func validatePayment(methods []PaymentMethod) error {
	if len(methods) == 0 {
		return ValidationError{Field: "paymentMethod", Message: "select at least one payment method"}
	}
	seen := make(map[PaymentMethod]bool, len(methods))
	for i, m := range methods {
		if !m.Valid() {
			return ValidationError{
				Field:   fmt.Sprintf("paymentMethod[%d]", i),
				Message: fmt.Sprintf("unknown payment method %q", m),
			}
		}
		if seen[m] {
			return ValidationError{
				Field:   fmt.Sprintf("paymentMethod[%d]", i),
				Message: fmt.Sprintf("payment method %q listed twice", m),
			}
		}
		seen[m] = true
	}
	return nil
}

func validateItems(items []LineItem) error {
	if len(items) == 0 {
		return ValidationError{Field: "items", Message: "select at least one product"}
	}
	for i, it := range items {
		if err := validateItem(it, i); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(it LineItem, index int) error {
	field := fmt.Sprintf("items[%d]", index)
	if strings.TrimSpace(it.Product) == "" {
		return ValidationError{Field: field + ".product", Message: "product is required"}
	}
	if it.Quantity < 1 {
		return ValidationError{Field: field + ".quantity", Message: pricing.ErrInvalidQuantity.Error()}
	}
	if it.SelectedPrice.IsNegative() || it.FinalPrice.IsNegative() {
		return ValidationError{Field: field, Message: pricing.ErrNegativePrice.Error()}
	}
	for j, e := range it.Extras {
		if e.Price.IsNegative() {
			return ValidationError{
				Field:   fmt.Sprintf("%s.extras[%d].price", field, j),
				Message: pricing.ErrNegativePrice.Error(),
			}
		}
	}
	return nil
}
