package avada

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// widthMethod decides how many columns a grapheme cluster is expected to take
// on the terminal. It is chosen once by DetectCapabilities
type widthMethod int

const (
	// wcwidth sums the width of each rune, the way most legacy terminals do
	wcwidth widthMethod = iota
	// noZWJ measures clusters with zero width joiners removed
	noZWJ
	// unicodeStd follows UAX #29 / UAX #11
	unicodeStd
)

var activeWidthMethod = unicodeStd

func gwidth(s string, method widthMethod) int {
	switch method {
	case noZWJ:
		return uniseg.StringWidth(strings.ReplaceAll(s, "\u200D", ""))
	case unicodeStd:
		return uniseg.StringWidth(s)
	case wcwidth:
		total := 0
		for _, r := range s {
			switch {
			case r >= 0xFE00 && r <= 0xFE0F:
				// variation selectors 1-16
				continue
			case r >= 0xE0100 && r <= 0xE01EF:
				// variation selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	default:
		panic("avada: unknown width method")
	}
}

// StringWidth returns the number of columns s is expected to occupy
func StringWidth(s string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		total += gwidth(g.Str(), activeWidthMethod)
	}
	return total
}
