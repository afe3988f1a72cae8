package main

import (
	"errors"
	"fmt"
	"os"

	"git.sr.ht/~rockorager/avada"
)

func main() {
	vt, err := avada.New(avada.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer vt.Close()

	rows, cols, err := vt.Size()
	if err != nil {
		panic(err)
	}
	fb := avada.NewFrameBuffer(rows, cols)
	draw := func() {
		fb.Clear()
		rows, cols := fb.Size()
		fb.Print(rows/2, (cols-13)/2, "Hello, World!", avada.Default, avada.Default, avada.AttrNone)
		fb.Print(rows/2+1, (cols-18)/2, "Press ESC to exit.", avada.Blue, avada.Default, avada.AttrItalic)
		if err := vt.Render(fb); err != nil {
			panic(err)
		}
	}
	draw()
	for {
		ev, err := vt.Poll(-1)
		var malformed *avada.MalformedInputError
		switch {
		case errors.As(err, &malformed):
			continue
		case err != nil:
			return
		}
		switch ev := ev.(type) {
		case avada.Resize:
			fb.Resize(ev.Rows, ev.Cols)
			draw()
		case avada.Key:
			if ev.Matches(avada.KeyEsc) {
				return
			}
		}
	}
}
