package ansi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequences(t *testing.T) {
	tests := []struct {
		name     string
		write    func(*bytes.Buffer)
		expected string
	}{
		{
			name:     "cup origin",
			write:    func(b *bytes.Buffer) { CursorPosition(b, 0, 0) },
			expected: "\x1b[1;1H",
		},
		{
			name:     "cup",
			write:    func(b *bytes.Buffer) { CursorPosition(b, 9, 119) },
			expected: "\x1b[10;120H",
		},
		{
			name:     "cuf default",
			write:    func(b *bytes.Buffer) { CursorForward(b, 1) },
			expected: "\x1b[C",
		},
		{
			name:     "cuf",
			write:    func(b *bytes.Buffer) { CursorForward(b, 12) },
			expected: "\x1b[12C",
		},
		{
			name:     "rep",
			write:    func(b *bytes.Buffer) { Repeat(b, 4) },
			expected: "\x1b[4b",
		},
		{
			name: "sgr",
			write: func(b *bytes.Buffer) {
				sgr := SGR{}
				sgr.Add(48, 2, 1, 2, 3)
				sgr.Add(1)
				sgr.Finish(b)
			},
			expected: "\x1b[48;2;1;2;3;1m",
		},
		{
			name: "empty sgr",
			write: func(b *bytes.Buffer) {
				sgr := SGR{}
				sgr.Finish(b)
			},
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			test.write(buf)
			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestSGRReuse(t *testing.T) {
	sgr := SGR{}
	buf := &bytes.Buffer{}
	sgr.Add(4)
	assert.False(t, sgr.Empty())
	sgr.Finish(buf)
	assert.True(t, sgr.Empty())
	sgr.Add(24)
	sgr.Finish(buf)
	assert.Equal(t, "\x1b[4m\x1b[24m", buf.String())
}

func TestPrivateModes(t *testing.T) {
	assert.Equal(t, "\x1b[?1049h", DECSET(AlternateScreen))
	assert.Equal(t, "\x1b[?25l", DECRST(CursorVisible))

	buf := &bytes.Buffer{}
	PrivateModes(buf, true, MouseButtons, MouseSGR)
	PrivateModes(buf, false, AutoWrap)
	PrivateModes(buf, false)
	assert.Equal(t, "\x1b[?1000;1006h\x1b[?7l", buf.String())
}

func TestBufferPool(t *testing.T) {
	buf := Buffers.Get()
	buf.WriteString("dirty")
	PutBuffer(buf)
	assert.Equal(t, 0, buf.Len())
}
