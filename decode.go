package avada

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MalformedInputError is returned by Decode for input which isn't a known
// key, mouse report or character. It is not fatal: log it and keep reading
type MalformedInputError struct {
	Bytes []byte
}

func (e *MalformedInputError) Error() string {
	switch {
	case len(e.Bytes) == 1:
		return fmt.Sprintf("unparsed single char: 0x%x", e.Bytes[0])
	case len(e.Bytes) > 0 && e.Bytes[0] == 0x1B:
		buf := &strings.Builder{}
		buf.WriteString("unparsed escape seq:")
		for _, c := range e.Bytes {
			switch {
			case isPrint(c):
				fmt.Fprintf(buf, " '%c'", c)
			default:
				fmt.Fprintf(buf, " 0x%x", c)
			}
		}
		return buf.String()
	default:
		return fmt.Sprintf("unparsed raw input: %q", e.Bytes)
	}
}

// keymap maps the exact bytes of a sequence to its key
var keymap = map[string]Key{
	"\x7F":    {Codepoint: KeyBackspace},
	"\r":      {Codepoint: KeyEnter},
	"\x1BOM":  {Codepoint: KeyEnter},
	"\x1B":    {Codepoint: KeyEsc},
	"\x1B[2~": {Codepoint: KeyInsert},
	"\x1B[3~": {Codepoint: KeyDelete},

	// keypad operators in application mode
	"\x1BOk": {Codepoint: '+'},
	"\x1BOm": {Codepoint: '-'},
	"\x1BOj": {Codepoint: '*'},
	"\x1BOo": {Codepoint: '/'},

	"\x1B[H":  {Codepoint: KeyHome},
	"\x1B[1H": {Codepoint: KeyHome},
	"\x1B[F":  {Codepoint: KeyEnd},
	"\x1B[1F": {Codepoint: KeyEnd},
	"\x1B[E":  {Codepoint: KeyBegin},
	"\x1B[1E": {Codepoint: KeyBegin},

	"\x1B[A":  {Codepoint: KeyUp},
	"\x1B[1A": {Codepoint: KeyUp},
	"\x1B[B":  {Codepoint: KeyDown},
	"\x1B[1B": {Codepoint: KeyDown},
	"\x1B[C":  {Codepoint: KeyRight},
	"\x1B[1C": {Codepoint: KeyRight},
	"\x1B[D":  {Codepoint: KeyLeft},
	"\x1B[1D": {Codepoint: KeyLeft},

	"\x1B[5~": {Codepoint: KeyPgUp},
	"\x1B[6~": {Codepoint: KeyPgDown},

	"\x1BOP":  {Codepoint: KeyF01},
	"\x1B[1P": {Codepoint: KeyF01},
	"\x1BOQ":  {Codepoint: KeyF02},
	"\x1B[1Q": {Codepoint: KeyF02},
	"\x1BOR":  {Codepoint: KeyF03},
	"\x1B[1R": {Codepoint: KeyF03},
	"\x1BOS":  {Codepoint: KeyF04},
	"\x1B[1S": {Codepoint: KeyF04},

	"\x1B[15~": {Codepoint: KeyF05},
	"\x1B[17~": {Codepoint: KeyF06},
	"\x1B[18~": {Codepoint: KeyF07},
	"\x1B[19~": {Codepoint: KeyF08},
	"\x1B[20~": {Codepoint: KeyF09},
	"\x1B[21~": {Codepoint: KeyF10},
	"\x1B[23~": {Codepoint: KeyF11},
	"\x1B[24~": {Codepoint: KeyF12},

	"\t":     {Codepoint: KeyTab},
	" ":      {Codepoint: KeySpace},
	"\x1B[Z": {Codepoint: KeyTab, Modifiers: ModShift},
}

// xterm modifier parameter, as in CSI 1 ; 5 A
var modifierDigits = map[byte]ModifierMask{
	'2': ModShift,
	'3': ModAlt,
	'4': ModAlt | ModShift,
	'5': ModCtrl,
	'6': ModCtrl | ModShift,
	'7': ModAlt | ModCtrl,
	'8': ModAlt | ModShift | ModCtrl,
}

// Decode classifies one chunk of terminal input as a single event. The chunk
// must hold exactly one key press or mouse report: sequences split across
// reads, or several events in one read, are not reassembled. Decode keeps no
// state between calls.
//
// Interpretations are tried in a fixed order: SGR mouse reports, the keymap,
// single bytes, modifier-suffixed sequences, Alt prefixes and finally a
// single UTF-8 encoded character. Anything else is a *MalformedInputError
func Decode(b []byte) (Event, error) {
	if len(b) == 0 {
		return nil, &MalformedInputError{}
	}
	if mouse, ok := parseMouse(b); ok {
		return mouse, nil
	}
	if key, ok := decodeKey(b); ok {
		return key, nil
	}
	return nil, &MalformedInputError{Bytes: append([]byte(nil), b...)}
}

func decodeKey(b []byte) (Key, bool) {
	if key, ok := keymap[string(b)]; ok {
		return key, true
	}

	if len(b) == 1 {
		return decodeByte(b[0])
	}

	if len(b) > 3 && b[0] == 0x1B {
		if key, ok := decodeModified(b); ok {
			return key, true
		}
	}

	if b[0] == 0x1B {
		rest := b[1:]
		if len(rest) == 0 || rest[0] == 0x1B {
			return Key{}, false
		}
		key, ok := decodeKey(rest)
		if !ok {
			return Key{}, false
		}
		key.Modifiers |= ModAlt
		return key, true
	}

	r, size := utf8.DecodeRune(b)
	if (r == utf8.RuneError && size <= 1) || size != len(b) {
		return Key{}, false
	}
	return Key{Codepoint: r}, true
}

func decodeByte(c byte) (Key, bool) {
	switch {
	case c == 0x00:
		return Key{Codepoint: KeySpace, Modifiers: ModCtrl}, true
	case c == 0x1F:
		return Key{Codepoint: '/', Modifiers: ModCtrl}, true
	case c == 0x07:
		// BEL terminates OSC replies; a lone one is the tail of a reply
		// split across reads, not a keystroke
		return Key{}, false
	case c < 0x1F && isPrint(c+96):
		return Key{Codepoint: rune(c + 96), Modifiers: ModCtrl}, true
	case isAlpha(c):
		key := Key{Codepoint: rune(c)}
		if c >= 'A' && c <= 'Z' {
			key.Modifiers = ModShift
		}
		return key, true
	case isPrint(c):
		return Key{Codepoint: rune(c)}, true
	default:
		return Key{}, false
	}
}

// decodeModified handles ESC sequences carrying an xterm modifier parameter
// just before the final byte, ie ESC [ 1 ; 5 A or ESC [ 15 ; 2 ~. The
// parameter (and a preceding ';') is removed and the remainder looked up in
// the keymap
func decodeModified(b []byte) (Key, bool) {
	n := len(b)
	final := b[n-1]
	if !isPrint(final) {
		return Key{}, false
	}
	digit := b[n-2]
	cut := n - 2
	if b[n-3] == ';' {
		cut = n - 3
	}
	base := make([]byte, 0, n)
	base = append(base, b[:cut]...)
	base = append(base, final)
	key, ok := keymap[string(base)]
	if !ok {
		return Key{}, false
	}
	if mods, ok := modifierDigits[digit]; ok {
		key.Modifiers = mods
	}
	return key, true
}

func isPrint(c byte) bool {
	return c >= 0x20 && c < 0x7F
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
