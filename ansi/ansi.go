// Package ansi writes the VT100 / xterm control sequences used to draw on a
// terminal
package ansi

import (
	"bytes"
	"strconv"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["

	// CursorHome moves the cursor to the top left cell
	CursorHome = CSI + "H"
	// SelectUTF8 selects UTF-8 as the character set (ISO 2022)
	SelectUTF8 = ESC + "%G"
	// KeypadApplication puts the keypad in application mode (DECKPAM)
	KeypadApplication = ESC + "="
	// KeypadNumeric puts the keypad in numeric mode (DECKPNM)
	KeypadNumeric = ESC + ">"
	// SGRReset resets all colors and attributes
	SGRReset = CSI + "m"
)

// DEC private modes
const (
	AutoWrap           = 7
	ScrollbarRxvt      = 30
	ReverseWrap        = 45
	CursorVisible      = 25
	MouseButtons       = 1000
	MouseAnyEvent      = 1003
	MouseSGR           = 1006
	ScrollOnOutput     = 1010
	ScrollOnKeypress   = 1011
	AlternateScreen    = 1049
	BracketedPaste     = 2004
	SynchronizedUpdate = 2026
)

// DECSET returns the sequence to enable a private mode
func DECSET(mode int) string {
	return CSI + "?" + strconv.Itoa(mode) + "h"
}

// DECRST returns the sequence to disable a private mode
func DECRST(mode int) string {
	return CSI + "?" + strconv.Itoa(mode) + "l"
}

// WriteInt writes the decimal representation of n
func WriteInt(buf *bytes.Buffer, n int) {
	var scratch [20]byte
	buf.Write(strconv.AppendInt(scratch[:0], int64(n), 10))
}

// CursorPosition writes CUP for the 0-based row and col
func CursorPosition(buf *bytes.Buffer, row int, col int) {
	buf.WriteString(CSI)
	WriteInt(buf, row+1)
	buf.WriteByte(';')
	WriteInt(buf, col+1)
	buf.WriteByte('H')
}

// CursorForward writes CUF to move n columns to the right. The count is
// omitted when it is 1, its default value
func CursorForward(buf *bytes.Buffer, n int) {
	buf.WriteString(CSI)
	if n != 1 {
		WriteInt(buf, n)
	}
	buf.WriteByte('C')
}

// Repeat writes REP: the preceding graphic character is repeated n more times
func Repeat(buf *bytes.Buffer, n int) {
	buf.WriteString(CSI)
	WriteInt(buf, n)
	buf.WriteByte('b')
}

// PrivateModes writes a single DECSET (set) or DECRST sequence changing all of
// modes. Nothing is written for an empty list
func PrivateModes(buf *bytes.Buffer, set bool, modes ...int) {
	if len(modes) == 0 {
		return
	}
	buf.WriteString(CSI + "?")
	for i, mode := range modes {
		if i > 0 {
			buf.WriteByte(';')
		}
		WriteInt(buf, mode)
	}
	if set {
		buf.WriteByte('h')
		return
	}
	buf.WriteByte('l')
}
