package main

import (
	"fmt"

	"git.sr.ht/~rockorager/avada"
	"git.sr.ht/~rockorager/avada/graphics"
)

const message = "Press Esc or Ctrl+Q to exit"

type painter struct {
	vt      *avada.Terminal
	fb      *avada.FrameBuffer
	brush   avada.Color
	drawing bool
	quit    bool

	img graphics.Image
	// sixels are written again after the cells under them were redrawn
	imgDirty bool
}

func newPainter(vt *avada.Terminal) (*painter, error) {
	rows, cols, err := vt.Size()
	if err != nil {
		return nil, err
	}
	return &painter{
		vt:    vt,
		fb:    avada.NewFrameBuffer(rows, cols),
		brush: avada.RGBAColor(255, 0, 255, 50),
	}, nil
}

func (p *painter) update(ev avada.Event) error {
	switch ev := ev.(type) {
	case avada.Idle:
		return nil
	case avada.Resize:
		logger.Info("resize", "rows", ev.Rows, "cols", ev.Cols)
		p.fb.Resize(ev.Rows, ev.Cols)
		p.fb.Clear()
		if err := p.fitImage(); err != nil {
			return err
		}
		p.scene('$')
	case avada.Key:
		logger.Info("key", "key", ev)
		switch {
		case ev.Matches('q', avada.ModCtrl),
			ev.Matches('c', avada.ModCtrl),
			ev.Matches(avada.KeyEsc),
			ev.Matches('q'):
			p.quit = true
			return nil
		case ev.Matches('l', avada.ModCtrl):
			p.vt.Invalidate()
			p.imgDirty = true
		case ev.Matches('p'):
			p.scene('\u2589')
		case ev.Matches('o'):
			p.scene('@')
		default:
			return nil
		}
	case avada.Mouse:
		logger.Debug("mouse", "event", ev)
		switch data := ev.Data.(type) {
		case avada.MouseButtonEvent:
			if data.Button == avada.MouseLeftButton {
				p.drawing = data.State == avada.ButtonPressed
			}
			return nil
		case avada.MouseMove:
			if !p.drawing {
				return nil
			}
			p.paint(ev.Row, ev.Col)
		case avada.MouseScroll:
			p.scroll(data.Direction)
		}
	}
	return p.render()
}

// paint leaves a mark of the brush at the given cell. Marks on a default
// colored cell start from the brush color, so they stay visible
func (p *painter) paint(row int, col int) {
	rows, cols := p.fb.Size()
	if row >= rows || col >= cols {
		return
	}
	cell := p.fb.Cell(row, col)
	cell.SetRune('&')
	if cell.Fg() == avada.Default {
		r, g, b, _ := p.brush.RGBA()
		cell.SetFg(avada.RGBAColor(r, g, b, 0))
	}
	cell.SetFg(avada.Blend(p.brush, cell.Fg()))
	cell.SetAttrs(avada.AttrBold)
}

func (p *painter) scroll(dir avada.ScrollDirection) {
	r, g, b, a := p.brush.RGBA()
	switch {
	case dir == avada.ScrollUp && g < 255:
		g += 1
	case dir == avada.ScrollDown && g > 0:
		g -= 1
	}
	p.brush = avada.RGBAColor(r, g, b, a)
	logger.Debug("brush", "color", p.brush)
}

// scene fills a box in the middle of the screen with fill and prints the
// help message on the second row. The status line is printed by render
func (p *painter) scene(fill rune) {
	rows, cols := p.fb.Size()
	w, h := cols/2, rows/2
	top, left := (rows-h)/2, (cols-w)/2
	for row := top; row < top+h; row += 1 {
		for col := left; col < left+w; col += 1 {
			p.fb.Cell(row, col).SetRune(fill)
		}
	}
	if rows > 1 && cols > 1 {
		p.fb.Print(1, 1, message, avada.Default, avada.Default, avada.AttrNone)
	}
	p.imgDirty = true
}

func (p *painter) render() error {
	rows, cols := p.fb.Size()
	status := fmt.Sprintf("brush %s", p.brush)
	if rows > 2 && cols > len(status)+1 {
		p.fb.Print(rows-1, 1, status, avada.Default, avada.Default, avada.AttrItalic)
	}
	if hb, ok := p.img.(*graphics.HalfBlock); ok {
		if err := hb.Draw(p.fb, nil, imageRow, imageCol); err != nil {
			return err
		}
	}
	if err := p.vt.Render(p.fb); err != nil {
		return err
	}
	// Sixels go on top of the rendered cells
	if sx, ok := p.img.(*graphics.Sixel); ok && p.imgDirty {
		if err := sx.Encode(p.vt, imageRow, imageCol); err != nil {
			return err
		}
	}
	p.imgDirty = false
	return nil
}
