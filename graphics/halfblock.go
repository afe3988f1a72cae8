package graphics

import (
	"image"
	"io"

	"git.sr.ht/~rockorager/avada"
)

const (
	upperHalf = '\u2580'
	lowerHalf = '\u2584'
)

// HalfBlock is an image composed of half block characters. Each cell shows
// two vertically stacked pixels, one in the foreground and one in the
// background color
type HalfBlock struct {
	img    image.Image
	cells  []avada.Cell
	width  int
	height int
}

func NewHalfBlock(img image.Image) *HalfBlock {
	return &HalfBlock{
		img: img,
	}
}

// Resize resizes and re-encodes the image
func (hb *HalfBlock) Resize(cols int, rows int) error {
	// A cell holds 1x2 pixels
	img := Fit(hb.img, cols, rows, 1, 2)
	bounds := img.Bounds()
	hb.width = bounds.Dx()
	hb.height = ceilDiv(bounds.Dy(), 2)
	hb.cells = make([]avada.Cell, hb.height*hb.width)
	for i := range hb.cells {
		y := i / hb.width
		x := i - (y * hb.width)
		px := bounds.Min.X + x
		py := bounds.Min.Y + y*2

		top, ta := toRGB(img.At(px, py))
		var (
			bot avada.Color
			ba  uint8
		)
		if py+1 < bounds.Max.Y {
			bot, ba = toRGB(img.At(px, py+1))
		}
		cell := &hb.cells[i]
		switch {
		case ta < transparentEnough && ba < transparentEnough:
			cell.SetRune(' ')
		case ta < transparentEnough:
			cell.SetRune(lowerHalf)
			cell.SetFg(bot)
		case ba < transparentEnough:
			cell.SetRune(upperHalf)
			cell.SetFg(top)
		default:
			cell.SetRune(upperHalf)
			cell.SetFg(top)
			cell.SetBg(bot)
		}
	}
	return nil
}

// CellSize is the current size of the encoded image in cells
func (hb *HalfBlock) CellSize() (cols int, rows int) {
	return hb.width, hb.height
}

// Draw copies the image into fb. Parts falling outside of fb are clipped. w
// is unused
func (hb *HalfBlock) Draw(fb *avada.FrameBuffer, _ io.Writer, row int, col int) error {
	rows, cols := fb.Size()
	for i := range hb.cells {
		y := row + i/hb.width
		x := col + i%hb.width
		if y < 0 || y >= rows || x < 0 || x >= cols {
			continue
		}
		fb.Cell(y, x).Assign(&hb.cells[i])
	}
	return nil
}
