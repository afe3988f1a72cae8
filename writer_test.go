package avada

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkWriter accepts at most size bytes per call
type chunkWriter struct {
	size  int
	calls int
	buf   bytes.Buffer
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.calls += 1
	if len(p) > w.size {
		p = p[:w.size]
	}
	return w.buf.Write(p)
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type stuckWriter struct{}

func (stuckWriter) Write(p []byte) (int, error) {
	return 0, nil
}

func TestWriterFlush(t *testing.T) {
	out := &chunkWriter{size: 3}
	w := newWriter(out)
	_, err := w.WriteString("hello, ")
	require.NoError(t, err)
	_, err = w.Write([]byte("world"))
	require.NoError(t, err)
	_, err = w.Printf("%d", 42)
	require.NoError(t, err)
	assert.Equal(t, 0, out.calls, "nothing is written before Flush")

	n, err := w.Flush()
	require.NoError(t, err)
	assert.Equal(t, 14, n)
	assert.Equal(t, "hello, world42", out.buf.String())
	assert.Equal(t, 5, out.calls)
	assert.Equal(t, 0, w.Len())

	n, err = w.Flush()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 5, out.calls)
}

func TestWriteAllErrors(t *testing.T) {
	tests := []struct {
		name     string
		w        io.Writer
		expected error
	}{
		{
			name:     "error is propagated",
			w:        failWriter{err: io.ErrClosedPipe},
			expected: io.ErrClosedPipe,
		},
		{
			name:     "no progress",
			w:        stuckWriter{},
			expected: io.ErrShortWrite,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := writeAll(test.w, []byte("abc"))
			assert.Equal(t, 0, n)
			assert.True(t, errors.Is(err, test.expected))
			assert.Contains(t, err.Error(), "avada: write")
		})
	}
}
