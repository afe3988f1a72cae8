package graphics

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/mattn/go-sixel"

	"git.sr.ht/~rockorager/avada"
	"git.sr.ht/~rockorager/avada/ansi"
	"git.sr.ht/~rockorager/avada/log"
)

// Sixel is an image encoded with the sixel protocol. The terminal draws it on
// top of the cells: write it after rendering the frame beneath it
type Sixel struct {
	img   image.Image
	buf   *bytes.Buffer
	cellW int
	cellH int
	w     int
	h     int
}

// NewSixel returns a sixel image for a terminal whose cells are cellW x cellH
// pixels. Nothing is encoded until Resize
func NewSixel(img image.Image, cellW int, cellH int) *Sixel {
	return &Sixel{
		img:   img,
		buf:   bytes.NewBuffer(nil),
		cellW: cellW,
		cellH: cellH,
	}
}

// Resize resizes and re-encodes the image
func (s *Sixel) Resize(cols int, rows int) error {
	img := Fit(s.img, cols, rows, s.cellW, s.cellH)
	bounds := img.Bounds()
	s.w = ceilDiv(bounds.Dx(), s.cellW)
	s.h = ceilDiv(bounds.Dy(), s.cellH)

	s.buf.Reset()
	// The encoder quantizes images with too many colors itself
	if err := sixel.NewEncoder(s.buf).Encode(img); err != nil {
		s.buf.Reset()
		return fmt.Errorf("graphics: sixel: %w", err)
	}
	// Foot requires that we set the P2 parameter = 1 in order to enable
	// transparency. This doesn't seem to affect other sixel based
	// terminals
	b := s.buf.Bytes()
	if len(b) > 4 {
		b[4] = '1'
	}
	log.Debug("sixel encoded", "cols", s.w, "rows", s.h, "bytes", s.buf.Len())
	return nil
}

// CellSize is the current size of the encoded image in cells
func (s *Sixel) CellSize() (cols int, rows int) {
	return s.w, s.h
}

// Encode writes the image with its top left corner at row, col
func (s *Sixel) Encode(w io.Writer, row int, col int) error {
	if s.buf.Len() == 0 {
		return nil
	}
	out := ansi.Buffers.Get()
	defer ansi.PutBuffer(out)
	ansi.CursorPosition(out, row, col)
	out.Write(s.buf.Bytes())
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("graphics: write: %w", err)
	}
	return nil
}

// Draw writes the image to w. fb is unused
func (s *Sixel) Draw(_ *avada.FrameBuffer, w io.Writer, row int, col int) error {
	return s.Encode(w, row, col)
}
