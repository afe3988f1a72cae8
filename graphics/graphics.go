// Package graphics draws images on a terminal, either as half block
// characters in a FrameBuffer or as sixel data written directly to the
// terminal
package graphics

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"git.sr.ht/~rockorager/avada"
	"git.sr.ht/~rockorager/avada/log"
)

// Alpha value that we consider to be transparent enough to use default
// background color
const transparentEnough = 50

// Image is an image sized in cells
type Image interface {
	// Resize scales the image to fit within cols x rows cells. The image
	// will not be upscaled, nor will its aspect ratio be changed
	Resize(cols int, rows int) error
	// CellSize is the current size of the image in cells
	CellSize() (cols int, rows int)
	// Draw places the image with its top left corner at row, col. Images
	// made of cells are drawn into fb; others are written to w and must
	// be drawn after fb has been rendered
	Draw(fb *avada.FrameBuffer, w io.Writer, row int, col int) error
}

// New returns the best Image the terminal can display. cellW and cellH are
// the size of a cell in pixels; sixels are only used when it is known
func New(img image.Image, caps avada.Capabilities, cellW int, cellH int) Image {
	if caps.Sixel && cellW > 0 && cellH > 0 {
		log.Trace("new sixel image")
		return NewSixel(img, cellW, cellH)
	}
	log.Trace("new half block image")
	return NewHalfBlock(img)
}

// Fit scales img down to fit within cols x rows cells of cellW x cellH
// pixels. If the image already fits it is returned as is
func Fit(img image.Image, cols int, rows int, cellW int, cellH int) image.Image {
	bounds := img.Bounds()
	wPix := bounds.Dx()
	hPix := bounds.Dy()
	// The size of the image in cells, rounding up since we will always
	// take over any cell we bleed into
	imgCols := ceilDiv(wPix, cellW)
	imgRows := ceilDiv(hPix, cellH)
	if imgCols <= cols && imgRows <= rows {
		return img
	}
	log.Debug("resizing image", "from_cols", imgCols, "from_rows", imgRows, "cols", cols, "rows", rows)
	sfX := float64(cols) / float64(imgCols)
	sfY := float64(rows) / float64(imgRows)
	sf := sfX
	if sfY < sfX {
		sf = sfY
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(sf*float64(wPix)), int(sf*float64(hPix))))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, bounds, draw.Over, nil)
	return dst
}

func ceilDiv(a int, b int) int {
	n := a / b
	if a%b != 0 {
		n += 1
	}
	return n
}

// toRGB converts c to an opaque avada color plus its alpha channel
func toRGB(c color.Color) (avada.Color, uint8) {
	pr, pg, pb, pa := c.RGBA()
	if pa == 0 {
		return avada.RGBColor(uint8(pr), uint8(pg), uint8(pb)), 0
	}
	r := uint8((pr * 255) / pa)
	g := uint8((pg * 255) / pa)
	b := uint8((pb * 255) / pa)
	return avada.RGBColor(r, g, b), uint8(pa >> 8)
}
