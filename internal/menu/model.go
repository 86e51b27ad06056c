package menu

import (
	"github.com/shopspring/decimal"
)

// Group is the section of the menu a product is listed under.
type Group string

const (
	GroupCombos     Group = "COMBOS"
	GroupClasicas   Group = "CLASICAS"
	GroupEspeciales Group = "ESPECIALES"
	GroupFritas     Group = "FRITAS"
	GroupPostres    Group = "POSTRES"
	GroupExtras     Group = "EXTRAS"
	GroupBebidas    Group = "BEBIDAS"
)

// DisplayGroups is the order the order form lists sellable groups in.
// EXTRAS are not sold on their own.
var DisplayGroups = []Group{
	GroupCombos, GroupClasicas, GroupEspeciales, GroupFritas, GroupBebidas, GroupPostres,
}

var groups = map[Group]bool{
	GroupCombos: true, GroupClasicas: true, GroupEspeciales: true, GroupFritas: true,
	GroupPostres: true, GroupExtras: true, GroupBebidas: true,
}

func (g Group) Valid() bool { return groups[g] }

// Option is one sellable variant of a product (size, style...). Prices are
// exact decimals, encoded as strings.
type Option struct {
	Type  string          `json:"type"  binding:"required" example:"Sencilla"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"50.00"`
}

// MenuItem is a product on the menu with at least one option.
// swagger:model MenuItem
type MenuItem struct {
	ID          string   `json:"id"          example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Product     string   `json:"product"     binding:"required" example:"Hamburguesa"`
	Description string   `json:"description" example:"Carne, lechuga y tomate"`
	Group       Group    `json:"group"       binding:"required" example:"CLASICAS"`
	Options     []Option `json:"options"     binding:"required,min=1,dive"`
}

// Option returns the option with the given type.
func (m MenuItem) Option(typ string) (Option, bool) {
	for _, o := range m.Options {
		if o.Type == typ {
			return o, true
		}
	}
	return Option{}, false
}

// UpdateRequest replaces every menu item whose id matches one of UpdatedItems.
// swagger:model UpdateMenuRequest
type UpdateRequest struct {
	UpdatedItems []MenuItem `json:"updatedItems" binding:"required,dive"`
}

// RemoveRequest payload of removal.
// swagger:model RemoveMenuRequest
type RemoveRequest struct {
	ID string `json:"id" binding:"required" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
}

// Section is a display group with its products, in menu order.
// swagger:model MenuSection
type Section struct {
	Group Group      `json:"group"`
	Items []MenuItem `json:"items"`
}

// GroupedResponse is the menu as the order form lays it out.
// swagger:model GroupedMenu
type GroupedResponse struct {
	Sections []Section  `json:"sections"`
	Extras   []MenuItem `json:"extras"`
}
