package avada

import (
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	const testString = "\U0001F600\U0001F52E\U0001F30D\U0001F4DDtest string"

	b.Run("full redraw", func(b *testing.B) {
		fb := NewFrameBuffer(50, 200)
		for row := 0; row < 50; row += 1 {
			fb.Print(row, 0, testString, RGBColor(uint8(row), 0, 0), Blue, AttrBold)
		}
		enc := NewEncoder(Capabilities{RGB: true, REP: true})
		for i := 0; i < b.N; i += 1 {
			enc.Invalidate()
			enc.Encode(fb)
		}
	})

	b.Run("one cell", func(b *testing.B) {
		fb := NewFrameBuffer(50, 200)
		enc := NewEncoder(Capabilities{RGB: true, REP: true})
		enc.Encode(fb)
		for i := 0; i < b.N; i += 1 {
			fb.Cell(i%50, i%200).SetRune(rune('a' + i%26))
			enc.Encode(fb)
		}
	})
}

func BenchmarkStringWidth(b *testing.B) {
	const testString = "\U0001F600\U0001F52E\U0001F30D\U0001F4DDtest string"
	for i := 0; i < b.N; i += 1 {
		StringWidth(testString)
	}
}

func BenchmarkDecode(b *testing.B) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("\x1b[1;5A"),
		[]byte("\x1b[<35;10;20M"),
		[]byte("é"),
	}
	for i := 0; i < b.N; i += 1 {
		Decode(inputs[i%len(inputs)])
	}
}
