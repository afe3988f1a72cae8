package avada

import (
	"bytes"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"git.sr.ht/~rockorager/avada/ansi"
	"git.sr.ht/~rockorager/avada/log"
)

// Stats are cumulative counters kept by an Encoder
type Stats struct {
	// Renders is the number of Encode calls
	Renders int
	// Cells is the number of cells emitted
	Cells int
	// Groups is the number of color groups emitted
	Groups int
	// Bytes is the number of bytes produced
	Bytes int
	// Elapsed is the time spent encoding
	Elapsed time.Duration
}

// An Encoder turns a FrameBuffer into the escape sequences needed to bring the
// terminal up to date. It remembers what was drawn in a reference buffer, so
// each pass only emits cells which changed since the last one.
//
// An Encoder is not safe for concurrent use
type Encoder struct {
	caps   Capabilities
	ref    *FrameBuffer
	out    bytes.Buffer
	groups []*group
	index  map[colorPair]*group
	stats  Stats
}

// NewEncoder returns an Encoder which has drawn nothing yet: the first pass
// redraws every cell
func NewEncoder(caps Capabilities) *Encoder {
	return &Encoder{
		caps:  caps,
		ref:   NewFrameBuffer(0, 0),
		index: make(map[colorPair]*group),
	}
}

// Stats returns the counters accumulated so far
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Invalidate forgets what is on the screen. The next pass redraws every cell
func (e *Encoder) Invalidate() {
	e.ref.Resize(0, 0)
}

// Encode returns the sequences which draw fb, or nil when nothing changed.
// The dirty flags of fb are cleared and the reference is updated as if the
// result had been written. The returned slice is only valid until the next
// call to Encode.
//
// Cells inside the area drawn by the previous pass are emitted only when they
// are dirty and differ from what was drawn. Cells outside of it are always
// emitted
func (e *Encoder) Encode(fb *FrameBuffer) []byte {
	start := time.Now()
	defer func() {
		e.stats.Renders += 1
		e.stats.Elapsed += time.Since(start)
	}()

	refRows, refCols := e.ref.Size()
	rows, cols := fb.Size()
	e.ref.Resize(rows, cols)
	validRows := minInt(refRows, rows)
	validCols := minInt(refCols, cols)

	cells := 0
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 1 {
			cell := fb.Cell(row, col)
			ref := e.ref.Cell(row, col)
			if row < validRows && col < validCols {
				if !cell.Dirty() {
					continue
				}
				cell.ClearDirty()
				if ref.Equal(cell) {
					continue
				}
			} else {
				cell.ClearDirty()
			}
			e.group(cell.fg, cell.bg).add(row, col, cell)
			*ref = *cell
			cells += 1
		}
	}

	e.out.Reset()
	for _, g := range e.groups {
		g.flush()
		e.out.Write(g.out.Bytes())
		g.reset()
		groups.Put(g)
	}
	ngroups := len(e.groups)
	e.groups = e.groups[:0]
	for k := range e.index {
		delete(e.index, k)
	}
	e.out.WriteString(ansi.CursorHome)

	if e.out.Len() == len(ansi.CursorHome) {
		log.Debug("nothing to render")
		return nil
	}
	e.stats.Cells += cells
	e.stats.Groups += ngroups
	e.stats.Bytes += e.out.Len()
	log.Trace("encoded", "cells", cells, "groups", ngroups, "bytes", e.out.Len())
	return e.out.Bytes()
}

// Render encodes fb and writes the result to w. Short writes are retried;
// any write error is returned. The reference is updated even when the write
// fails, call Invalidate to force a full redraw after an error
func (e *Encoder) Render(w io.Writer, fb *FrameBuffer) error {
	out := e.Encode(fb)
	if out == nil {
		return nil
	}
	_, err := writeAll(w, out)
	return err
}

func (e *Encoder) group(fg Color, bg Color) *group {
	key := colorPair{fg: fg, bg: bg}
	if g, ok := e.index[key]; ok {
		return g
	}
	g := groups.Get()
	g.caps = &e.caps
	e.index[key] = g
	e.groups = append(e.groups, g)
	return g
}

type colorPair struct {
	fg Color
	bg Color
}

var groups = ansi.NewPool(func() *group {
	return &group{}
})

// group encodes the cells sharing one color pair. Cells must be added in
// row-major order
type group struct {
	caps *Capabilities
	out  bytes.Buffer
	sgr  ansi.SGR

	// cursor position after the last cell, valid when placed
	placed bool
	row    int
	col    int

	// modes in effect, valid when the matching has* is set
	hasBg    bool
	hasFg    bool
	hasAttrs bool
	bg       Color
	fg       Color
	attrs    AttributeMask

	// pending run of identical glyphs
	run    [utf8.UTFMax]byte
	runN   int
	runLen int
}

var blankGlyph = []byte{' '}

func (g *group) add(row int, col int, cell *Cell) {
	if !g.placed || g.row != row || g.col != col-1 {
		g.flush()
		switch {
		case g.placed && g.row == row:
			gap := col - g.col
			if gap < 2 {
				panic(fmt.Sprintf("avada: cell (%d, %d) added after (%d, %d)", row, col, g.row, g.col))
			}
			ansi.CursorForward(&g.out, gap-1)
		default:
			ansi.CursorPosition(&g.out, row, col)
		}
	}
	g.placed = true
	g.row = row
	g.col = col

	if !g.hasBg || g.bg != cell.bg {
		g.addColor(cell.bg, true)
		g.bg = cell.bg
		g.hasBg = true
	}

	glyph := blankGlyph
	// Blank cells only show their background
	if !cell.blank() {
		fg := Blend(cell.fg, cell.bg)
		if !g.hasFg || g.fg != fg {
			g.addColor(fg, false)
			g.fg = fg
			g.hasFg = true
		}
		g.addAttrs(cell.attrs)
		glyph = cell.glyphBytes()
	}

	if !g.sgr.Empty() {
		g.flush()
		g.sgr.Finish(&g.out)
	}

	if g.runLen > 0 && bytes.Equal(g.run[:g.runN], glyph) {
		g.runLen += 1
		return
	}
	g.flush()
	g.runN = copy(g.run[:], glyph)
	g.runLen = 1
}

func (g *group) addColor(c Color, background bool) {
	if c.Kind() == KindRGB && !g.caps.RGB {
		c = nearestSystem(c)
	}
	base := 30
	if background {
		base = 40
	}
	switch c.Kind() {
	case KindDefault:
		g.sgr.Add(base + 9)
	case KindSystem:
		g.sgr.Add(base + int(c.Index()))
	case KindRGB:
		r, gr, b, _ := c.RGBA()
		g.sgr.Add(base+8, 2, int(r), int(gr), int(b))
	default:
		panic(fmt.Sprintf("avada: unknown color kind %d", c.Kind()))
	}
}

// addAttrs toggles the attributes which differ from the ones in effect. The
// first time, every attribute is set or reset explicitly
func (g *group) addAttrs(attrs AttributeMask) {
	prev := ^attrs
	if g.hasAttrs {
		prev = g.attrs
	}
	diff := prev ^ attrs
	toggle := func(attr AttributeMask, on int, off int) {
		if diff&attr == 0 {
			return
		}
		if attrs&attr != 0 {
			g.sgr.Add(on)
			return
		}
		g.sgr.Add(off)
	}
	toggle(AttrBold, 1, 22)
	toggle(AttrItalic, 3, 23)
	toggle(AttrUnderline, 4, 24)
	g.attrs = attrs
	g.hasAttrs = true
}

// flush writes the pending run. Short runs, or any run when the terminal
// lacks REP, are written out in full
func (g *group) flush() {
	if g.runLen == 0 {
		return
	}
	glyph := g.run[:g.runN]
	switch {
	case !g.caps.REP || g.runN*g.runLen < 5:
		for i := 0; i < g.runLen; i += 1 {
			g.out.Write(glyph)
		}
	default:
		g.out.Write(glyph)
		ansi.Repeat(&g.out, g.runLen-1)
	}
	g.runLen = 0
}

// reset prepares g for reuse
func (g *group) reset() {
	out := g.out
	out.Reset()
	*g = group{out: out}
}

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
