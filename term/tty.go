// Package term is a handle to a terminal device: raw mode, size queries,
// waiting for input and resize notifications
package term

import (
	"errors"
	"io"
	"os"
	"time"
)

// ErrInterrupted is returned by Poll when the wait was interrupted by a
// signal before any input arrived
var ErrInterrupted = errors.New("term: interrupted")

type Tty interface {
	io.ReadWriteCloser

	// Fd returns the file descriptor of the terminal
	Fd() int
	MakeRaw() error
	// Restore returns the terminal to the state saved by MakeRaw. It is a
	// no-op if MakeRaw wasn't called
	Restore() error
	// Size reports the Tty's current size
	Size() (Size, error)
	// Poll waits up to timeout for input to be available to Read. ready is
	// false when the timeout expired. A negative timeout waits forever
	Poll(timeout time.Duration) (ready bool, err error)
	// Notify reports terminal events which can't otherwise be included in
	// the input stream. Currently only size change signals will be sent.
	// The provided channel should have a buffer of at least 1: signals will
	// be dropped if they cannot immediately be sent to the channel
	Notify(chan os.Signal)
	// Stop undoes Notify
	Stop(chan os.Signal)
}

type Size struct {
	Row    int
	Col    int
	XPixel int
	YPixel int
}

// Open opens a handle to the controlling terminal
func Open() (Tty, error) {
	return openTty()
}

// FromFile wraps an already open terminal device, such as os.Stdin or the
// tty end of a pseudo-terminal pair. Closing the Tty closes f
func FromFile(f *os.File) Tty {
	return newTty(f)
}
