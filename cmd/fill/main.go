// fill bounces a colored box around the screen as fast as the terminal
// allows, then prints render statistics. Press Ctrl+C to exit
package main

import (
	"errors"
	"bytes"
	"fmt"
	"time"

	"git.sr.ht/~rockorager/avada"
	"git.sr.ht/~rockorager/avada/log"
)

type box struct {
	rowOff int
	colOff int

	colDir int
	rowDir int

	cols int
	rows int

	color    int
	colorDir int
}

func (b *box) step(rows int, cols int) {
	if b.color >= 255 {
		b.colorDir = -1
	}
	if b.color <= 0 {
		b.colorDir = 1
	}
	b.color += b.colorDir

	if b.colOff+b.cols >= cols {
		b.colDir = -1
	}
	if b.colOff <= 0 {
		b.colDir = 1
	}
	if b.rowOff+b.rows >= rows {
		b.rowDir = -1
	}
	if b.rowOff <= 0 {
		b.rowDir = 1
	}
	b.colOff += b.colDir
	b.rowOff += b.rowDir
}

func (b *box) draw(fb *avada.FrameBuffer) {
	fb.Clear()
	rows, cols := fb.Size()
	bg := avada.RGBColor(uint8(b.color), 0, uint8(255-b.color))
	for row := b.rowOff; row < b.rowOff+b.rows && row < rows; row += 1 {
		for col := b.colOff; col < b.colOff+b.cols && col < cols; col += 1 {
			if row < 0 || col < 0 {
				continue
			}
			fb.Cell(row, col).SetBg(bg)
		}
	}
}

func main() {
	logBuf := bytes.NewBuffer(nil)
	log.SetLevel(log.LevelInfo)
	log.SetOutput(logBuf)
	defer func() {
		fmt.Print(logBuf.String())
	}()

	vt, err := avada.New(avada.Options{DisableMouse: true})
	if err != nil {
		log.Error("init failed", "error", err)
		return
	}
	rows, cols, err := vt.Size()
	if err != nil {
		vt.Close()
		log.Error("size failed", "error", err)
		return
	}
	fb := avada.NewFrameBuffer(rows, cols)
	b := &box{cols: 16, rows: 8}

	start := time.Now()
	for {
		ev, err := vt.Poll(10 * time.Millisecond)
		var malformed *avada.MalformedInputError
		switch {
		case errors.As(err, &malformed):
			continue
		case err != nil:
			vt.Close()
			log.Error("poll failed", "error", err)
			return
		}
		switch ev := ev.(type) {
		case avada.Key:
			if ev.Matches('c', avada.ModCtrl) {
				stats := vt.Stats()
				vt.Close()
				log.Info("done",
					"elapsed", time.Since(start),
					"renders", stats.Renders,
					"cells", stats.Cells,
					"bytes", stats.Bytes,
				)
				return
			}
		case avada.Resize:
			fb.Resize(ev.Rows, ev.Cols)
		case avada.Idle:
			rows, cols := fb.Size()
			b.step(rows, cols)
		}
		b.draw(fb)
		if err := vt.Render(fb); err != nil {
			log.Error("render failed", "error", err)
		}
	}
}
