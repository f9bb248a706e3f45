package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontTall   = 0x01 // Double height only
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 48 for 80mm)
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{ESC, '@'}) // initialize printer
	return d
}

// Align sets text alignment for subsequent lines.
func (d *Document) Align(align byte) *Document {
	d.buf.Write([]byte{ESC, 'a', align})
	return d
}

// Font sets the character size for subsequent lines.
func (d *Document) Font(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Line prints a line of text followed by a line feed.
func (d *Document) Line(text string) *Document {
	d.buf.WriteString(text)
	d.buf.WriteByte(LF)
	return d
}

// Pair prints a label on the left and a value on the right of one line.
func (d *Document) Pair(label, value string) *Document {
	gap := d.width - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	return d.Line(label + strings.Repeat(" ", gap) + value)
}

// Separator prints a full-width dashed line.
func (d *Document) Separator() *Document {
	return d.Line(strings.Repeat("-", d.width))
}

// Feed advances the paper by n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// Cut feeds and performs a partial paper cut.
func (d *Document) Cut() *Document {
	d.Feed(3)
	d.buf.Write([]byte{GS, 'V', 1})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Money formats an integer rupee amount for receipt output.
func Money(amount int64) string {
	return fmt.Sprintf("Rs. %d", amount)
}
