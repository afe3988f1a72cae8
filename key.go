package avada

import (
	"strings"
	"unicode"
)

// Key is a keyboard event. Codepoint is either the character typed or one of
// the Key* named keys, which live above the Unicode range
type Key struct {
	Codepoint rune
	Modifiers ModifierMask
}

type ModifierMask int

const (
	ModShift ModifierMask = 1 << iota
	ModAlt
	ModCtrl
)

// Matches reports if k is the given key with exactly the given modifiers
func (k Key) Matches(r rune, mods ...ModifierMask) bool {
	var m ModifierMask
	for _, mod := range mods {
		m |= mod
	}
	return k.Codepoint == r && k.Modifiers == m
}

// String renders the key in vim notation. Modified and named keys are wrapped
// in angle brackets, with modifiers in the order c-a-s:
//
//	a  <c-a>  <a-s-up>  <f5>  <esc>
func (k Key) String() string {
	buf := &strings.Builder{}
	name, named := keyNames[k.Codepoint]
	if k.Codepoint >= 0 && k.Codepoint < 0x20 && !named {
		// A raw control code with no name: show it as the ctrl chord
		// which produces it
		name = "c-" + strings.ToLower(string(k.Codepoint+0x40))
		named = true
	}
	bracket := named || k.Modifiers != 0
	if bracket {
		buf.WriteRune('<')
	}
	if k.Modifiers&ModCtrl != 0 {
		buf.WriteString("c-")
	}
	if k.Modifiers&ModAlt != 0 {
		buf.WriteString("a-")
	}
	if k.Modifiers&ModShift != 0 {
		buf.WriteString("s-")
	}
	switch {
	case named:
		buf.WriteString(name)
	case k.Codepoint < 0 || k.Codepoint > unicode.MaxRune:
		return "<invalid>"
	case k.Modifiers != 0:
		buf.WriteString(strings.ToLower(string(k.Codepoint)))
	default:
		buf.WriteRune(k.Codepoint)
	}
	if bracket {
		buf.WriteRune('>')
	}
	return buf.String()
}

const (
	extended rune = 1 << 30
)

const (
	KeyUp rune = extended + 1 + iota
	KeyRight
	KeyDown
	KeyLeft
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyPgDown
	KeyPgUp
	KeyHome
	KeyEnd
	KeyF01
	KeyF02
	KeyF03
	KeyF04
	KeyF05
	KeyF06
	KeyF07
	KeyF08
	KeyF09
	KeyF10
	KeyF11
	KeyF12
	KeyEnter
	// KeyBegin is keypad 5 with num lock off
	KeyBegin

	// Aliases
	KeyTab   rune = 0x09
	KeyEsc   rune = 0x1B
	KeySpace rune = 0x20
)

var keyNames = map[rune]string{
	KeyUp:        "up",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyBackspace: "bs",
	KeyPgDown:    "pgdown",
	KeyPgUp:      "pgup",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyF01:       "f1",
	KeyF02:       "f2",
	KeyF03:       "f3",
	KeyF04:       "f4",
	KeyF05:       "f5",
	KeyF06:       "f6",
	KeyF07:       "f7",
	KeyF08:       "f8",
	KeyF09:       "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyEnter:     "enter",
	KeyBegin:     "begin",
	KeyTab:       "tab",
	KeyEsc:       "esc",
	KeySpace:     "space",
}
