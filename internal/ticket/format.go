// Package ticket turns an order into the lines of a printed receipt and
// sends those lines to a printer.
//
// Formatting is pure: Format only reads the order. Devices live behind Sink.
package ticket

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/comandas/internal/order"
	"github.com/MikeMC777/comandas/internal/pricing"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

type Kind int

const (
	KindText Kind = iota
	KindRule
	KindBlank
	KindQR
)

func (k Kind) String() string {
	switch k {
	case KindRule:
		return "rule"
	case KindBlank:
		return "blank"
	case KindQR:
		return "qr"
	default:
		return "text"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Line is one printer instruction. For KindQR, Text is the encoded payload.
type Line struct {
	Kind      Kind   `json:"kind"`
	Align     Align  `json:"align"`
	Text      string `json:"text,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Large     bool   `json:"large,omitempty"`
}

const (
	DefaultShopName = "La Casita Azul"
	DefaultFooter   = "¡Gracias por su compra!"
)

// Formatter holds the shop-specific parts of a ticket.
type Formatter struct {
	ShopName string
	Footer   string
	// QRPayload is printed as a QR code on orders paid by QR. Empty disables it.
	QRPayload string
}

func text(a Align, s string) Line { return Line{Kind: KindText, Align: a, Text: s} }

var (
	rule  = Line{Kind: KindRule, Align: AlignCenter}
	blank = Line{Kind: KindBlank}
)

func money(d decimal.Decimal) string { return "$" + pricing.Display(d) }

// Format lays out the ticket for o. It has no side effects; formatting the
// same order twice yields equal lines.
func (f Formatter) Format(o order.Order) []Line {
	shop := f.ShopName
	if shop == "" {
		shop = DefaultShopName
	}
	footer := f.Footer
	if footer == "" {
		footer = DefaultFooter
	}

	lines := []Line{
		{Kind: KindText, Align: AlignCenter, Text: shop, Bold: true, Underline: true},
		rule,
		text(AlignLeft, "Nombre: "+o.CustomerName),
		text(AlignLeft, "Dirección: "+o.Address),
		text(AlignLeft, "Teléfono: "+o.Phone),
		text(AlignLeft, "Método de Pago: "+joinPayments(o.PaymentMethod)),
	}
	if c := strings.TrimSpace(o.Comments); c != "" {
		lines = append(lines, text(AlignCenter, "***"+c+"***"))
	}
	lines = append(lines, rule)

	for _, it := range o.Items {
		lines = append(lines, itemBlock(it)...)
	}

	if o.Discount > 0 {
		lines = append(lines, text(AlignLeft, fmt.Sprintf("Descuento: %d%%", o.Discount)), rule)
	}

	lines = append(lines,
		rule,
		Line{Kind: KindText, Align: AlignRight, Text: "Total: " + money(o.TotalPrice), Bold: true, Large: true},
		rule,
		text(AlignCenter, footer),
		rule,
	)

	if f.QRPayload != "" && o.PaidWith(order.PaymentQR) {
		lines = append(lines, Line{Kind: KindQR, Align: AlignCenter, Text: f.QRPayload})
	}
	return lines
}

func itemBlock(it order.LineItem) []Line {
	title := it.Product
	if it.SelectedOption != "" {
		title += " - " + it.SelectedOption
	}
	out := []Line{
		text(AlignLeft, title),
		text(AlignLeft, fmt.Sprintf("Unidades: %d x %s", it.Quantity, money(it.SelectedPrice))),
		blank,
	}
	for _, e := range it.Extras {
		out = append(out,
			text(AlignLeft, "Extra: "+e.Product),
			text(AlignLeft, fmt.Sprintf("Unidades: %d x %s", it.Quantity, money(e.Price))),
		)
	}
	if it.Comments != "" {
		out = append(out, blank, text(AlignLeft, "Comentarios: "+it.Comments))
	}
	return append(out,
		blank,
		text(AlignRight, "subtotal: "+money(it.FinalPrice)),
		rule,
	)
}

func joinPayments(methods []order.PaymentMethod) string {
	parts := make([]string, len(methods))
	for i, m := range methods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
