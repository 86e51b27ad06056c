package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ESC/POS control bytes.
const (
	esc byte = 0x1B
	gs  byte = 0x1D
	lf  byte = 0x0A
)

// qrMaxDots is the widest QR raster sent to the printer (58mm paper).
const qrMaxDots = 256

// Encode turns lines into an ESC/POS job: initialize, select code page 850,
// beep, print each line, feed and cut.
func Encode(lines []Line, width int) ([]byte, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	e := escpos{enc: encoding.ReplaceUnsupported(charmap.CodePage850.NewEncoder())}

	e.buf.Write([]byte{esc, '@'})
	e.buf.Write([]byte{esc, 't', 2})
	e.buf.Write([]byte{esc, 'B', 2, 4})

	for _, l := range lines {
		e.align(l.Align)
		switch l.Kind {
		case KindRule:
			e.buf.WriteString(strings.Repeat("-", width))
			e.buf.WriteByte(lf)
		case KindBlank:
			e.buf.WriteByte(lf)
		case KindQR:
			if err := e.qr(l.Text); err != nil {
				return nil, err
			}
		default:
			if err := e.text(l); err != nil {
				return nil, err
			}
		}
	}

	e.buf.Write([]byte{lf, lf, lf})
	e.buf.Write([]byte{gs, 'V', 66, 0})
	return e.buf.Bytes(), nil
}

type escpos struct {
	buf bytes.Buffer
	enc *encoding.Encoder
}

func (e *escpos) align(a Align) {
	var n byte
	switch a {
	case AlignCenter:
		n = 1
	case AlignRight:
		n = 2
	}
	e.buf.Write([]byte{esc, 'a', n})
}

func (e *escpos) text(l Line) error {
	raw, err := e.enc.String(l.Text)
	if err != nil {
		return fmt.Errorf("encode %q: %w", l.Text, err)
	}
	e.buf.Write([]byte{esc, 'E', flag(l.Bold)})
	e.buf.Write([]byte{esc, '-', flag(l.Underline)})
	if l.Large {
		e.buf.Write([]byte{gs, '!', 0x11})
	}
	e.buf.WriteString(raw)
	e.buf.WriteByte(lf)
	if l.Large {
		e.buf.Write([]byte{gs, '!', 0})
	}
	e.buf.Write([]byte{esc, 'E', 0})
	e.buf.Write([]byte{esc, '-', 0})
	return nil
}

// qr prints payload as a GS v 0 raster image.
func (e *escpos) qr(payload string) error {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr code: %w", err)
	}
	bitmap := code.Bitmap()
	modules := len(bitmap)
	if modules == 0 {
		return nil
	}
	scale := qrMaxDots / modules
	if scale < 1 {
		scale = 1
	}
	dots := modules * scale
	widthBytes := (dots + 7) / 8

	e.buf.Write([]byte{gs, 'v', '0', 0,
		byte(widthBytes % 256), byte(widthBytes / 256),
		byte(dots % 256), byte(dots / 256)})
	for y := 0; y < dots; y++ {
		row := bitmap[y/scale]
		for xb := 0; xb < widthBytes; xb++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				x := xb*8 + bit
				if x < dots && row[x/scale] {
					b |= 1 << uint(7-bit)
				}
			}
			e.buf.WriteByte(b)
		}
	}
	e.buf.WriteByte(lf)
	return nil
}

func flag(on bool) byte {
	if on {
		return 1
	}
	return 0
}
