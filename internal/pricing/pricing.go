// Package pricing computes line item and order totals.
//
// All amounts are exact decimals; rounding to cents only happens when a value
// is rendered for display.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidDiscount = errors.New("discount must be one of 0, 5, 10, 15, 20, 25")
	ErrNegativePrice   = errors.New("price must not be negative")
)

// Discounts lists the accepted discount percentages in ascending order.
var Discounts = []int{0, 5, 10, 15, 20, 25}

var hundred = decimal.NewFromInt(100)

// ValidDiscount reports whether pct is one of Discounts.
func ValidDiscount(pct int) bool {
	for _, d := range Discounts {
		if d == pct {
			return true
		}
	}
	return false
}

// UnitPrice returns base plus the sum of extras.
func UnitPrice(base decimal.Decimal, extras []decimal.Decimal) (decimal.Decimal, error) {
	if base.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	unit := base
	for _, e := range extras {
		if e.IsNegative() {
			return decimal.Zero, ErrNegativePrice
		}
		unit = unit.Add(e)
	}
	return unit, nil
}

// LinePrice returns (base + sum(extras)) * quantity.
func LinePrice(base decimal.Decimal, extras []decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	unit, err := UnitPrice(base, extras)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Sum adds up line totals.
func Sum(lines []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l)
	}
	return total
}

// OrderTotal sums the line totals and applies a percentage discount.
// Discounts outside the accepted set are rejected, never clamped.
func OrderTotal(lines []decimal.Decimal, discountPct int) (decimal.Decimal, error) {
	if !ValidDiscount(discountPct) {
		return decimal.Zero, ErrInvalidDiscount
	}
	for _, l := range lines {
		if l.IsNegative() {
			return decimal.Zero, ErrNegativePrice
		}
	}
	return ApplyDiscount(Sum(lines), discountPct), nil
}

// ApplyDiscount returns subtotal * (100 - pct) / 100. The caller validates pct.
func ApplyDiscount(subtotal decimal.Decimal, pct int) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(100 - pct))).Div(hundred)
}

// AdjustQuantity recomputes a line for newQty and reports the change in price
// relative to oldQty, so a running total can be updated incrementally.
func AdjustQuantity(unit decimal.Decimal, oldQty, newQty int) (final, delta decimal.Decimal, err error) {
	if newQty < 1 {
		return decimal.Zero, decimal.Zero, ErrInvalidQuantity
	}
	if unit.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrNegativePrice
	}
	final = unit.Mul(decimal.NewFromInt(int64(newQty)))
	delta = unit.Mul(decimal.NewFromInt(int64(newQty - oldQty)))
	return final, delta, nil
}

// Display formats an amount with two decimals, as printed on tickets.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
