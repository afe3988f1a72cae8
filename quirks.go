package avada

import (
	"git.sr.ht/~rockorager/avada/log"
)

func applyQuirks(getenv func(string) string, caps *Capabilities) {
	if getenv("ASCIINEMA_REC") != "" {
		// asciinema can't replay sixels
		log.Debug("asciinema identified. applying quirks")
		caps.Sixel = false
	}
	if getenv("AVADA_FORCE_REP") != "" {
		caps.REP = true
	}
	if getenv("AVADA_DISABLE_REP") != "" {
		caps.REP = false
	}
	if getenv("AVADA_FORCE_TRUECOLOR") != "" {
		caps.RGB = true
	}
	if getenv("AVADA_DISABLE_TRUECOLOR") != "" {
		caps.RGB = false
	}
	if getenv("AVADA_FORCE_SIXEL") != "" {
		caps.Sixel = true
	}
	if getenv("AVADA_FORCE_WCWIDTH") != "" {
		activeWidthMethod = wcwidth
	}
	if getenv("AVADA_FORCE_NOZWJ") != "" {
		activeWidthMethod = noZWJ
	}
}
