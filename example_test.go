package avada_test

import (
	"time"

	"git.sr.ht/~rockorager/avada"
)

func ExampleTerminal() {
	vt, err := avada.New(avada.Options{})
	if err != nil {
		panic(err)
	}
	defer vt.Close()
	rows, cols, _ := vt.Size()
	fb := avada.NewFrameBuffer(rows, cols)
	for {
		ev, err := vt.Poll(time.Second)
		if err != nil {
			// Malformed input can be ignored
			continue
		}
		switch ev := ev.(type) {
		case avada.Resize:
			fb.Resize(ev.Rows, ev.Cols)
			fb.Clear()
		case avada.Key:
			switch {
			case ev.Matches('c', avada.ModCtrl):
				return
			case ev.Matches('l', avada.ModCtrl):
				vt.Invalidate()
			default:
				fb.Print(0, 0, ev.String(), avada.Default, avada.Default, avada.AttrNone)
			}
		}
		vt.Render(fb)
	}
}

func ExampleKey() {
	var ev avada.Event = avada.Key{Codepoint: 'x', Modifiers: avada.ModCtrl}
	switch ev := ev.(type) {
	case avada.Key:
		switch {
		case ev.Matches('x', avada.ModCtrl):
			// Cut?
		case ev.Matches(avada.KeyUp):
			// Move up
		default:
			// handle the key
		}
	}
}

func ExampleEncoder() {
	fb := avada.NewFrameBuffer(2, 20)
	fb.Print(0, 0, "Hello", avada.Red, avada.Default, avada.AttrBold)

	enc := avada.NewEncoder(avada.Capabilities{REP: true})
	first := enc.Encode(fb)
	second := enc.Encode(fb)
	_, _ = first, second // second is nil: nothing changed
}
