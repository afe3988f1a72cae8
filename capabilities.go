package avada

import (
	"errors"
	"os"
	"strings"

	"git.sr.ht/~rockorager/avada/log"
)

// ErrUnsupportedTerminal is returned for terminals which can't address the
// cursor, such as TERM=dumb
var ErrUnsupportedTerminal = errors.New("avada: unsupported terminal")

// Capabilities are the optional terminal features the encoder and the
// graphics package may use
type Capabilities struct {
	// REP is support for repeating the preceding character (CSI n b)
	REP bool
	// RGB is support for 24 bit color SGR sequences. Without it RGB colors
	// are mapped to the nearest system color
	RGB bool
	// Sixel is support for sixel graphics
	Sixel bool
}

// DetectCapabilities inspects the environment and the terminfo database for
// the current TERM. The AVADA_FORCE_* and AVADA_DISABLE_* variables override
// what is detected
func DetectCapabilities() (Capabilities, error) {
	name := os.Getenv("TERM")
	if !supportedTerm(name) {
		return Capabilities{}, ErrUnsupportedTerminal
	}
	ti, err := infocmp(name)
	if err != nil {
		log.Debug("no terminfo entry", "term", name, "error", err)
	}
	caps := detectCapabilities(os.Getenv, ti)
	log.Debug("capabilities detected", "term", name, "rep", caps.REP, "rgb", caps.RGB, "sixel", caps.Sixel)
	return caps, nil
}

// supportedTerm reports if the terminal named by TERM can address the cursor
func supportedTerm(name string) bool {
	return name != "" && name != "dumb"
}

func detectCapabilities(getenv func(string) string, ti *terminfo) Capabilities {
	name := getenv("TERM")
	caps := Capabilities{}
	// xterm and its descendants have had REP for decades, whatever their
	// terminfo claims
	caps.REP = strings.HasPrefix(name, "xterm")
	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		caps.RGB = true
	}
	for _, prefix := range []string{"foot", "mlterm", "yaft"} {
		if strings.HasPrefix(name, prefix) {
			caps.Sixel = true
		}
	}
	if ti != nil {
		if _, ok := ti.Strings["rep"]; ok {
			caps.REP = true
		}
		if ti.Bools["RGB"] || ti.Bools["Tc"] {
			caps.RGB = true
		}
	}
	applyQuirks(getenv, &caps)
	return caps
}
