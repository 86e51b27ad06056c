package ticket

import (
	"strings"
	"unicode/utf8"
)

const DefaultWidth = 32

// Render draws lines as plain text, width columns wide, the way they come out
// of the printer. Long text wraps; QR codes show as a placeholder.
func Render(lines []Line, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var b strings.Builder
	for _, l := range lines {
		switch l.Kind {
		case KindRule:
			b.WriteString(strings.Repeat("-", width))
			b.WriteByte('\n')
		case KindBlank:
			b.WriteByte('\n')
		case KindQR:
			b.WriteString(pad("[QR] "+l.Text, width, AlignCenter))
			b.WriteByte('\n')
		default:
			for _, chunk := range wrap(l.Text, width) {
				b.WriteString(pad(chunk, width, l.Align))
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func pad(s string, width int, a Align) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	gap := width - n
	switch a {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		return strings.Repeat(" ", gap/2) + s
	default:
		return s
	}
}

func wrap(s string, width int) []string {
	r := []rune(s)
	if len(r) <= width {
		return []string{s}
	}
	var out []string
	for len(r) > width {
		cut := width
		for i := width; i > 0; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, strings.TrimRight(string(r[:cut]), " "))
		r = []rune(strings.TrimLeft(string(r[cut:]), " "))
	}
	if len(r) > 0 {
		out = append(out, string(r))
	}
	return out
}
