// Package menu holds the product catalogue of the restaurant and the
// repositories that persist it.
package menu

import (
	"fmt"
	"strings"
)

// ValidationError describes a menu item that cannot be stored.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Normalize trims text fields and checks the item invariants: a product
// name, a known group, at least one option, unique option types and
// non-negative prices.
func Normalize(item MenuItem) (MenuItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Product = strings.TrimSpace(item.Product)
	item.Description = strings.TrimSpace(item.Description)
	item.Group = Group(strings.ToUpper(strings.TrimSpace(string(item.Group))))

	if item.Product == "" {
		return item, ValidationError{Field: "product", Message: "product is required"}
	}
	if !item.Group.Valid() {
		return item, ValidationError{Field: "group", Message: fmt.Sprintf("unknown group %q", item.Group)}
	}
	if len(item.Options) == 0 {
		return item, ValidationError{Field: "options", Message: "at least one option is required"}
	}

	seen := make(map[string]bool, len(item.Options))
	opts := make([]Option, len(item.Options))
	for i, o := range item.Options {
		o.Type = strings.TrimSpace(o.Type)
		field := fmt.Sprintf("options[%d]", i)
		if o.Type == "" {
			return item, ValidationError{Field: field + ".type", Message: "option type is required"}
		}
		if seen[o.Type] {
			return item, ValidationError{Field: field + ".type", Message: fmt.Sprintf("duplicate option %q", o.Type)}
		}
		if o.Price.IsNegative() {
			return item, ValidationError{Field: field + ".price", Message: "price must not be negative"}
		}
		seen[o.Type] = true
		opts[i] = o
	}
	item.Options = opts
	return item, nil
}

// Find returns the item with the given id.
func Find(items []MenuItem, id string) (MenuItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}

// Extras returns the items of group EXTRAS, in menu order.
func Extras(items []MenuItem) []MenuItem {
	out := []MenuItem{}
	for _, it := range items {
		if it.Group == GroupExtras {
			out = append(out, it)
		}
	}
	return out
}

// FindExtra looks up an extra by product name.
func FindExtra(items []MenuItem, product string) (MenuItem, bool) {
	for _, it := range items {
		if it.Group == GroupExtras && it.Product == product {
			return it, true
		}
	}
	return MenuItem{}, false
}

// Grouped lays the menu out by DisplayGroups, keeping menu order inside a
// group.
func Grouped(items []MenuItem) GroupedResponse {
	resp := GroupedResponse{Sections: make([]Section, 0, len(DisplayGroups)), Extras: Extras(items)}
	for _, g := range DisplayGroups {
		sec := Section{Group: g, Items: []MenuItem{}}
		for _, it := range items {
			if it.Group == g {
				sec.Items = append(sec.Items, it)
			}
		}
		resp.Sections = append(resp.Sections, sec)
	}
	return resp
}
