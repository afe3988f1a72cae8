package avada

import (
	"bytes"
	"fmt"
	"io"

	"git.sr.ht/~rockorager/avada/log"
)

// writer is a buffered writer for a terminal. Nothing reaches the terminal
// until Flush, which writes the whole buffer and resets it
type writer struct {
	w   io.Writer
	buf *bytes.Buffer
}

func newWriter(w io.Writer) *writer {
	return &writer{
		w:   w,
		buf: bytes.NewBuffer(make([]byte, 0, 8192)),
	}
}

func (w *writer) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

func (w *writer) WriteString(s string) (n int, err error) {
	return w.buf.WriteString(s)
}

func (w *writer) Printf(s string, args ...any) (n int, err error) {
	return fmt.Fprintf(w.buf, s, args...)
}

func (w *writer) Len() int {
	return w.buf.Len()
}

func (w *writer) Flush() (n int, err error) {
	if w.buf.Len() == 0 {
		return 0, nil
	}
	defer w.buf.Reset()
	return writeAll(w.w, w.buf.Bytes())
}

// writeAll writes p in as many calls as it takes. A write which makes no
// progress and reports no error is treated as io.ErrShortWrite
func writeAll(w io.Writer, p []byte) (n int, err error) {
	for n < len(p) {
		m, err := w.Write(p[n:])
		n += m
		if err != nil {
			return n, fmt.Errorf("avada: write: %w", err)
		}
		if m == 0 {
			return n, fmt.Errorf("avada: write: %w", io.ErrShortWrite)
		}
	}
	log.Debug("flushed", "bytes", n)
	return n, nil
}
