package avada

import (
	"fmt"
	"unicode/utf8"
)

// Cell is one character slot on the screen. The zero value is an empty, dirty
// cell with the default colors.
//
// Cells track whether they have been modified since the last render. Setting a
// field to the value it already holds does not mark the cell dirty
type Cell struct {
	glyph [utf8.UTFMax]byte
	n     uint8
	fg    Color
	bg    Color
	attrs AttributeMask
	// clean is inverted so the zero value is dirty
	clean bool
}

// Glyph returns the UTF-8 encoded character held by the cell
func (c *Cell) Glyph() string {
	return string(c.glyph[:c.n])
}

func (c *Cell) glyphBytes() []byte {
	return c.glyph[:c.n]
}

func (c *Cell) Fg() Color {
	return c.fg
}

func (c *Cell) Bg() Color {
	return c.bg
}

func (c *Cell) Attrs() AttributeMask {
	return c.attrs
}

// Dirty reports if the cell changed since the last ClearDirty
func (c *Cell) Dirty() bool {
	return !c.clean
}

func (c *Cell) MarkDirty() {
	c.clean = false
}

func (c *Cell) ClearDirty() {
	c.clean = true
}

// blank reports if the cell has nothing to draw in the foreground
func (c *Cell) blank() bool {
	return c.n == 0 || c.glyph[0] == ' '
}

// SetRune stores r as the cell's character. Invalid runes are stored as
// utf8.RuneError
func (c *Cell) SetRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if int(c.n) == n && c.glyph == buf {
		return
	}
	c.glyph = buf
	c.n = uint8(n)
	c.clean = false
}

// SetGlyph stores the first character of s. An empty string clears the
// character
func (c *Cell) SetGlyph(s string) {
	if s == "" {
		if c.n == 0 {
			return
		}
		c.glyph = [utf8.UTFMax]byte{}
		c.n = 0
		c.clean = false
		return
	}
	r, _ := utf8.DecodeRuneInString(s)
	c.SetRune(r)
}

func (c *Cell) SetFg(fg Color) {
	if c.fg == fg {
		return
	}
	c.fg = fg
	c.clean = false
}

func (c *Cell) SetBg(bg Color) {
	if c.bg == bg {
		return
	}
	c.bg = bg
	c.clean = false
}

func (c *Cell) SetAttrs(attrs AttributeMask) {
	if c.attrs == attrs {
		return
	}
	c.attrs = attrs
	c.clean = false
}

// Equal compares the visible content of two cells. The dirty flag is ignored.
// When there is no character, only the backgrounds are compared
func (c *Cell) Equal(other *Cell) bool {
	if c.n != other.n {
		return false
	}
	if c.n == 0 {
		return c.bg == other.bg
	}
	return c.glyph == other.glyph &&
		c.fg == other.fg &&
		c.bg == other.bg &&
		c.attrs == other.attrs
}

// Blend draws other on top of c: the character is replaced, colors are alpha
// blended and attributes are merged
func (c *Cell) Blend(other *Cell) {
	changed := c.n != other.n || c.glyph != other.glyph
	c.glyph = other.glyph
	c.n = other.n

	fg := Blend(other.fg, c.fg)
	bg := Blend(other.bg, c.bg)
	attrs := c.attrs | other.attrs
	changed = changed || fg != c.fg || bg != c.bg || attrs != c.attrs
	c.fg, c.bg, c.attrs = fg, bg, attrs
	if changed {
		c.clean = false
	}
}

// Assign copies other into c. c becomes dirty only if the visible content
// differs
func (c *Cell) Assign(other *Cell) {
	if c.Equal(other) {
		return
	}
	*c = *other
	c.clean = false
}

// Reset returns the cell to the default (empty, dirty) state
func (c *Cell) Reset() {
	*c = Cell{}
}

func (c Cell) String() string {
	return fmt.Sprintf("%q fg=%s bg=%s attrs=%s dirty=%t", c.Glyph(), c.fg, c.bg, c.attrs, !c.clean)
}
