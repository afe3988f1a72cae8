package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"git.sr.ht/~rockorager/avada/graphics"
)

// The image sits under the help message
const (
	imageRow = 3
	imageCol = 1
)

func (p *painter) loadImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	cellW, cellH := p.vt.CellSize()
	p.img = graphics.New(img, p.vt.Capabilities(), cellW, cellH)
	logger.Info("image loaded", "format", format, "bounds", img.Bounds(), "type", fmt.Sprintf("%T", p.img))
	return p.fitImage()
}

// fitImage scales the image to the space left under the help message
func (p *painter) fitImage() error {
	if p.img == nil {
		return nil
	}
	rows, cols := p.fb.Size()
	return p.img.Resize(maxInt(cols-imageCol, 0), maxInt(rows-imageRow-1, 0))
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
