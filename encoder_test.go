package avada

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaults is the mode sequence opening a group of default colored cells
const defaults = "\x1b[49;39;22;23;24m"

func fillRow(fb *FrameBuffer, row int, s string) {
	for col, r := range []rune(s) {
		fb.Cell(row, col).SetRune(r)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	fb := NewFrameBuffer(3, 4)
	fb.Print(0, 0, "abc", Red, Blue, AttrBold)
	fb.Print(2, 1, "xyz", RGBColor(1, 2, 3), Default, AttrNone)

	enc := NewEncoder(Capabilities{RGB: true})
	first := enc.Encode(fb)
	require.NotNil(t, first)
	assert.Nil(t, enc.Encode(fb), "second pass has nothing to draw")

	// Touching a cell without changing it is not a change
	fb.Cell(0, 0).MarkDirty()
	assert.Nil(t, enc.Encode(fb))
	assert.False(t, fb.Cell(0, 0).Dirty())
}

func TestEncodeGrow(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	enc := NewEncoder(Capabilities{})
	require.NotNil(t, enc.Encode(fb))
	before := enc.Stats()
	assert.Equal(t, 100, before.Cells)

	fb.Resize(12, 14)
	fb.Clear()
	require.NotNil(t, enc.Encode(fb))
	after := enc.Stats()
	assert.Equal(t, 12*14-10*10, after.Cells-before.Cells)
	assert.Equal(t, 2, after.Renders)

	// Changing one cell in the old area emits just that cell
	fb.Cell(3, 3).SetRune('q')
	assert.Equal(t, "\x1b[4;4H"+defaults+"q\x1b[H", string(enc.Encode(fb)))
}

func TestEncodeShrink(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	enc := NewEncoder(Capabilities{})
	require.NotNil(t, enc.Encode(fb))

	fb.Resize(2, 2)
	assert.Nil(t, enc.Encode(fb))

	fb.Resize(2, 3)
	assert.Equal(t, "\x1b[1;3H\x1b[49m \x1b[2;3H \x1b[H", string(enc.Encode(fb)))
}

func TestEncodeInvalidate(t *testing.T) {
	fb := NewFrameBuffer(1, 2)
	fillRow(fb, 0, "ab")
	enc := NewEncoder(Capabilities{})
	expected := "\x1b[1;1H" + defaults + "ab\x1b[H"
	assert.Equal(t, expected, string(enc.Encode(fb)))
	assert.Nil(t, enc.Encode(fb))

	enc.Invalidate()
	assert.Equal(t, expected, string(enc.Encode(fb)))
}

func TestEncodeRuns(t *testing.T) {
	tests := []struct {
		name     string
		caps     Capabilities
		text     string
		expected string
	}{
		{
			name:     "four is literal",
			caps:     Capabilities{REP: true},
			text:     "xxxx",
			expected: "xxxx",
		},
		{
			name:     "five repeats",
			caps:     Capabilities{REP: true},
			text:     "xxxxx",
			expected: "x\x1b[4b",
		},
		{
			name:     "no REP support",
			caps:     Capabilities{},
			text:     "xxxxx",
			expected: "xxxxx",
		},
		{
			name:     "multibyte glyph",
			caps:     Capabilities{REP: true},
			text:     "\u00e9\u00e9\u00e9",
			expected: "\u00e9\x1b[2b",
		},
		{
			name:     "two byte glyph twice is literal",
			caps:     Capabilities{REP: true},
			text:     "\u00e9\u00e9",
			expected: "\u00e9\u00e9",
		},
		{
			name:     "runs end on a new glyph",
			caps:     Capabilities{REP: true},
			text:     "aaaaabbbbbb",
			expected: "a\x1b[4bb\x1b[5b",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fb := NewFrameBuffer(1, len([]rune(test.text)))
			fillRow(fb, 0, test.text)
			enc := NewEncoder(test.caps)
			actual := string(enc.Encode(fb))
			assert.Equal(t, "\x1b[1;1H"+defaults+test.expected+"\x1b[H", actual)
		})
	}
}

func TestEncodeBlankRun(t *testing.T) {
	fb := NewFrameBuffer(2, 6)
	enc := NewEncoder(Capabilities{REP: true})
	assert.Equal(t, "\x1b[1;1H\x1b[49m \x1b[5b\x1b[2;1H \x1b[5b\x1b[H", string(enc.Encode(fb)))
}

func TestEncodeCursorMovement(t *testing.T) {
	tests := []struct {
		name     string
		cols     []int
		expected string
	}{
		{
			name:     "adjacent",
			cols:     []int{1, 2},
			expected: "\x1b[1;2H" + defaults + "aa\x1b[H",
		},
		{
			name:     "gap of one cell",
			cols:     []int{1, 3},
			expected: "\x1b[1;2H" + defaults + "a\x1b[Ca\x1b[H",
		},
		{
			name:     "larger gap",
			cols:     []int{0, 4},
			expected: "\x1b[1;1H" + defaults + "a\x1b[3Ca\x1b[H",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fb := NewFrameBuffer(2, 5)
			enc := NewEncoder(Capabilities{})
			require.NotNil(t, enc.Encode(fb))
			for _, col := range test.cols {
				fb.Cell(0, col).SetRune('a')
			}
			assert.Equal(t, test.expected, string(enc.Encode(fb)))
		})
	}

	t.Run("next row", func(t *testing.T) {
		fb := NewFrameBuffer(2, 5)
		enc := NewEncoder(Capabilities{})
		require.NotNil(t, enc.Encode(fb))
		fb.Cell(0, 4).SetRune('a')
		fb.Cell(1, 0).SetRune('b')
		assert.Equal(t, "\x1b[1;5H"+defaults+"a\x1b[2;1Hb\x1b[H", string(enc.Encode(fb)))
	})
}

func TestEncodeColors(t *testing.T) {
	tests := []struct {
		name     string
		caps     Capabilities
		fg       Color
		bg       Color
		expected string
	}{
		{
			name:     "system",
			fg:       Red,
			bg:       Blue,
			expected: "\x1b[44;31;22;23;24m",
		},
		{
			name:     "rgb",
			caps:     Capabilities{RGB: true},
			fg:       RGBColor(1, 2, 3),
			bg:       RGBColor(4, 5, 6),
			expected: "\x1b[48;2;4;5;6;38;2;1;2;3;22;23;24m",
		},
		{
			name:     "rgb without truecolor",
			fg:       RGBColor(200, 10, 10),
			bg:       RGBColor(10, 10, 200),
			expected: "\x1b[44;31;22;23;24m",
		},
		{
			name:     "foreground blended onto background",
			caps:     Capabilities{RGB: true},
			fg:       RGBAColor(255, 0, 0, 128),
			bg:       RGBColor(0, 0, 255),
			expected: "\x1b[48;2;0;0;255;38;2;128;0;127;22;23;24m",
		},
		{
			name:     "default",
			fg:       Default,
			bg:       Default,
			expected: defaults,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fb := NewFrameBuffer(1, 1)
			fb.Print(0, 0, "a", test.fg, test.bg, AttrNone)
			enc := NewEncoder(test.caps)
			assert.Equal(t, "\x1b[1;1H"+test.expected+"a\x1b[H", string(enc.Encode(fb)))
		})
	}
}

func TestEncodeAttributes(t *testing.T) {
	fb := NewFrameBuffer(1, 4)
	fb.Print(0, 0, "a", Default, Default, AttrBold)
	fb.Print(0, 1, "b", Default, Default, AttrBold)
	fb.Print(0, 2, "c", Default, Default, AttrItalic|AttrUnderline)
	fb.Print(0, 3, "d", Default, Default, AttrNone)
	enc := NewEncoder(Capabilities{})
	expected := "\x1b[1;1H\x1b[49;39;1;23;24mab" +
		"\x1b[22;3;4mc" +
		"\x1b[23;24md" +
		"\x1b[H"
	assert.Equal(t, expected, string(enc.Encode(fb)))
}

func TestEncodeGroups(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Print(0, 0, "ab", Default, Red, AttrNone)
	fb.Print(1, 0, "c", Default, Green, AttrNone)
	fb.Print(1, 1, "d", Default, Red, AttrNone)
	enc := NewEncoder(Capabilities{})
	expected := "\x1b[1;1H\x1b[41;39;22;23;24mab\x1b[2;2Hd" +
		"\x1b[2;1H\x1b[42;39;22;23;24mc" +
		"\x1b[H"
	assert.Equal(t, expected, string(enc.Encode(fb)))
	assert.Equal(t, 2, enc.Stats().Groups)
}

func TestRender(t *testing.T) {
	fb := NewFrameBuffer(1, 3)
	fillRow(fb, 0, "abc")
	enc := NewEncoder(Capabilities{})
	out := &chunkWriter{size: 2}
	require.NoError(t, enc.Render(out, fb))
	assert.Equal(t, "\x1b[1;1H"+defaults+"abc\x1b[H", out.buf.String())
	assert.Greater(t, out.calls, 1)

	calls := out.calls
	require.NoError(t, enc.Render(out, fb))
	assert.Equal(t, calls, out.calls, "nothing to render writes nothing")

	fb.Cell(0, 0).SetRune('z')
	err := enc.Render(failWriter{err: io.ErrClosedPipe}, fb)
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
}
