package avada

import (
	"bufio"
	"bytes"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// terminfo is the subset of a compiled terminfo entry we look at: which
// capabilities exist. String values are kept in their escaped source form
type terminfo struct {
	Names    []string
	Bools    map[string]bool
	Numerics map[string]int
	Strings  map[string]string
}

// infocmp loads the entry for name by running infocmp(1)
func infocmp(name string) (*terminfo, error) {
	out, err := exec.Command("infocmp", "-1", "-x", name).Output()
	if err != nil {
		return nil, err
	}
	return parseInfocmp(bytes.NewReader(out))
}

// parseInfocmp reads the one-capability-per-line output of infocmp -1
func parseInfocmp(r io.Reader) (*terminfo, error) {
	ti := &terminfo{
		Bools:    make(map[string]bool),
		Numerics: make(map[string]int),
		Strings:  make(map[string]string),
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), ",")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "\t"):
			line = strings.TrimSpace(line)
			if key, val, found := strings.Cut(line, "="); found {
				ti.Strings[key] = val
				continue
			}
			if key, val, found := strings.Cut(line, "#"); found {
				i, err := strconv.ParseUint(val, 0, 0)
				if err != nil {
					return nil, err
				}
				ti.Numerics[key] = int(i)
				continue
			}
			ti.Bools[line] = true
		default:
			ti.Names = strings.Split(line, "|")
		}
	}
	return ti, scanner.Err()
}
