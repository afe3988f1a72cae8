package avada

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"git.sr.ht/~rockorager/avada/ansi"
	"git.sr.ht/~rockorager/avada/log"
	"git.sr.ht/~rockorager/avada/term"
)

// ErrClosed is returned by a Terminal after Close
var ErrClosed = errors.New("avada: terminal closed")

// eventPollInterval bounds how long the Events goroutine takes to notice a
// cancelled context
const eventPollInterval = 100 * time.Millisecond

// Terminal is a session with a terminal: it owns the tty, the modes set on
// it and the Encoder drawing to it.
//
// Only one Terminal should exist at a time, since resize signals are
// delivered process wide
type Terminal struct {
	tty     term.Tty
	caps    Capabilities
	enc     *Encoder
	out     *writer
	buf     []byte
	enabled []int
	// disabled modes are set again by Close
	disabled []int

	resizePending atomic.Bool
	closed        atomic.Bool
	sigwinch      chan os.Signal
	done          chan struct{}
	events        *queue[Event]
	reading       atomic.Bool
}

// New opens the controlling terminal and prepares it for drawing. TERM must
// name a terminal able to address the cursor
func New(opts Options) (*Terminal, error) {
	if !supportedTerm(os.Getenv("TERM")) {
		return nil, ErrUnsupportedTerminal
	}
	tty, err := term.Open()
	if err != nil {
		return nil, err
	}
	t, err := NewTerminal(tty, opts)
	if err != nil {
		tty.Close()
		return nil, err
	}
	return t, nil
}

// NewTerminal starts a session over an already open tty. The tty is put in
// raw mode, switched to the alternate screen and mouse reporting is enabled
// (see Options). Close undoes all of it
func NewTerminal(tty term.Tty, opts Options) (*Terminal, error) {
	if opts.Logger != nil {
		log.SetLogger(opts.Logger)
	}
	var caps Capabilities
	switch opts.Capabilities {
	case nil:
		var err error
		caps, err = DetectCapabilities()
		if err != nil {
			return nil, err
		}
	default:
		caps = *opts.Capabilities
	}
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = defaultReadBufferSize
	}

	t := &Terminal{
		tty:      tty,
		caps:     caps,
		enc:      NewEncoder(caps),
		out:      newWriter(tty),
		buf:      make([]byte, opts.ReadBufferSize),
		sigwinch: make(chan os.Signal, 1),
		done:     make(chan struct{}),
		events:   newQueue[Event](),
		disabled: []int{
			ansi.AutoWrap,
			ansi.ReverseWrap,
			ansi.CursorVisible,
			ansi.ScrollbarRxvt,
			ansi.ScrollOnOutput,
			ansi.ScrollOnKeypress,
		},
	}
	if !opts.DisableMouse {
		t.enabled = append(t.enabled, ansi.MouseButtons, ansi.MouseSGR, ansi.MouseAnyEvent)
	}
	if !opts.NoAltScreen {
		t.enabled = append(t.enabled, ansi.AlternateScreen)
	}

	if err := tty.MakeRaw(); err != nil {
		return nil, err
	}
	t.out.WriteString(ansi.CursorHome + ansi.SelectUTF8 + ansi.KeypadApplication)
	ansi.PrivateModes(t.out.buf, true, t.enabled...)
	ansi.PrivateModes(t.out.buf, false, t.disabled...)
	if _, err := t.out.Flush(); err != nil {
		tty.Restore()
		return nil, err
	}

	tty.Notify(t.sigwinch)
	go t.watchResize()
	log.Debug("terminal ready", "rep", caps.REP, "rgb", caps.RGB, "sixel", caps.Sixel)
	return t, nil
}

func (t *Terminal) watchResize() {
	for {
		select {
		case <-t.sigwinch:
			log.Trace("resize signal")
			t.resizePending.Store(true)
		case <-t.done:
			return
		}
	}
}

// Capabilities returns the capabilities in use
func (t *Terminal) Capabilities() Capabilities {
	return t.caps
}

// Size returns the size of the terminal in cells
func (t *Terminal) Size() (rows int, cols int, err error) {
	size, err := t.tty.Size()
	if err != nil {
		return 0, 0, err
	}
	return size.Row, size.Col, nil
}

// Poll waits up to timeout for the next event. A negative timeout waits
// forever. Idle is returned when the timeout expires. A resize signal
// received since the last call is reported as a Resize event before any
// input.
//
// Each read is decoded as a single event: input which can't be decoded is
// returned as a *MalformedInputError, which isn't fatal. io.EOF is returned
// once the terminal hangs up
func (t *Terminal) Poll(timeout time.Duration) (Event, error) {
	if t.closed.Load() {
		return nil, ErrClosed
	}
	for {
		if t.resizePending.Swap(false) {
			return t.resize()
		}
		ready, err := t.tty.Poll(timeout)
		switch {
		case errors.Is(err, term.ErrInterrupted):
			// Loop around: a pending resize is reported, anything
			// else is retried
			continue
		case err != nil:
			return nil, err
		case !ready:
			if t.resizePending.Swap(false) {
				return t.resize()
			}
			return Idle{}, nil
		}

		n, err := t.tty.Read(t.buf)
		switch {
		case errors.Is(err, io.EOF):
			return nil, io.EOF
		case err != nil:
			return nil, fmt.Errorf("avada: read: %w", err)
		case n == 0:
			continue
		}
		ev, err := Decode(t.buf[:n])
		if err != nil {
			log.Debug("malformed input", "error", err)
			return nil, err
		}
		return ev, nil
	}
}

// CellSize returns the size of a cell in pixels, or zeros if the terminal
// doesn't report its pixel size
func (t *Terminal) CellSize() (width int, height int) {
	size, err := t.tty.Size()
	if err != nil || size.Col == 0 || size.Row == 0 {
		return 0, 0
	}
	return size.XPixel / size.Col, size.YPixel / size.Row
}

// Write writes p to the terminal as is, bypassing the Encoder. It is meant
// for content the terminal draws itself, such as sixel graphics
func (t *Terminal) Write(p []byte) (int, error) {
	if t.closed.Load() {
		return 0, ErrClosed
	}
	return writeAll(t.tty, p)
}

func (t *Terminal) resize() (Event, error) {
	rows, cols, err := t.Size()
	if err != nil {
		return nil, err
	}
	log.Trace("resized", "rows", rows, "cols", cols)
	return Resize{Cols: cols, Rows: rows}, nil
}

// Events polls the terminal in a goroutine and delivers events on the
// returned channel, which is never closed and never blocks the reader. Idle
// events and malformed input are dropped. Polling stops when ctx is done, the
// terminal is closed or the terminal hangs up.
//
// Only one goroutine may read from the Terminal: don't call Poll while
// Events is running. Calling Events again returns the same channel
func (t *Terminal) Events(ctx context.Context) <-chan Event {
	if !t.reading.CompareAndSwap(false, true) {
		return t.events.Chan()
	}
	go func() {
		defer t.reading.Store(false)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.done:
				return
			default:
			}
			ev, err := t.Poll(eventPollInterval)
			var malformed *MalformedInputError
			switch {
			case errors.As(err, &malformed):
				continue
			case errors.Is(err, ErrClosed) || errors.Is(err, io.EOF):
				return
			case err != nil:
				if !t.closed.Load() {
					log.Error("poll failed", "error", err)
				}
				return
			}
			if _, ok := ev.(Idle); ok {
				continue
			}
			t.events.push(ev)
		}
	}()
	return t.events.Chan()
}

// Render draws fb, writing only what changed since the last call
func (t *Terminal) Render(fb *FrameBuffer) error {
	if t.closed.Load() {
		return ErrClosed
	}
	return t.enc.Render(t.tty, fb)
}

// Invalidate makes the next Render redraw every cell. Traditionally, this
// should be bound to Ctrl+l
func (t *Terminal) Invalidate() {
	t.enc.Invalidate()
}

// Stats returns the render statistics of the session
func (t *Terminal) Stats() Stats {
	return t.enc.Stats()
}

// Close restores the terminal to the state it was in before the session
// started and closes the tty. Calling Close more than once is a no-op
func (t *Terminal) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(t.done)
	t.tty.Stop(t.sigwinch)

	_, _ = t.out.WriteString(ansi.SGRReset)
	_, _ = t.out.WriteString(ansi.KeypadNumeric)
	ansi.PrivateModes(t.out.buf, true, t.disabled...)
	enabled := make([]int, 0, len(t.enabled))
	for i := len(t.enabled) - 1; i >= 0; i -= 1 {
		enabled = append(enabled, t.enabled[i])
	}
	ansi.PrivateModes(t.out.buf, false, enabled...)
	_, werr := t.out.Flush()
	rerr := t.tty.Restore()
	cerr := t.tty.Close()

	stats := t.enc.Stats()
	log.Info("Renders", "val", stats.Renders)
	if stats.Renders != 0 {
		log.Info("Time/render", "val", stats.Elapsed/time.Duration(stats.Renders))
	}
	return errors.Join(werr, rerr, cerr)
}
