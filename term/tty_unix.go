//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// tty is a unix terminal device
type tty struct {
	f     *os.File
	fd    int
	state *term.State
}

func openTty() (Tty, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("term: open: %w", err)
	}
	return newTty(f), nil
}

func newTty(f *os.File) *tty {
	return &tty{
		f: f,
		// Fd puts the file in blocking mode: reads only happen after Poll
		// reported input
		fd: int(f.Fd()),
	}
}

func (t *tty) Read(b []byte) (n int, err error) {
	return t.f.Read(b)
}

func (t *tty) Write(b []byte) (n int, err error) {
	return t.f.Write(b)
}

func (t *tty) Close() error {
	return t.f.Close()
}

func (t *tty) Fd() int {
	return t.fd
}

func (t *tty) MakeRaw() error {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("term: raw mode: %w", err)
	}
	t.state = state
	return nil
}

func (t *tty) Restore() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	t.state = nil
	return nil
}

func (t *tty) Size() (Size, error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, fmt.Errorf("term: winsize: %w", err)
	}
	return Size{
		Row:    int(ws.Row),
		Col:    int(ws.Col),
		XPixel: int(ws.Xpixel),
		YPixel: int(ws.Ypixel),
	}, nil
}

func (t *tty) Poll(timeout time.Duration) (bool, error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}
	fds := []unix.PollFd{
		{Fd: int32(t.fd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, ms)
	switch {
	case errors.Is(err, unix.EINTR):
		return false, ErrInterrupted
	case err != nil:
		return false, fmt.Errorf("term: poll: %w", err)
	}
	return n > 0, nil
}

func (t *tty) Notify(ch chan os.Signal) {
	signal.Notify(ch, syscall.SIGWINCH)
}

func (t *tty) Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
