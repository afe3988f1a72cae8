package avada

import "golang.org/x/exp/slog"

// Options configure a Terminal. The zero value is usable
type Options struct {
	// Logger is an optional slog.Logger that avada will log to. avada
	// uses stdlib levels plus log.LevelTrace
	Logger *slog.Logger

	// Capabilities overrides capability detection. When nil, the
	// capabilities are read from the environment and terminfo
	Capabilities *Capabilities

	// DisableMouse leaves mouse reporting off
	DisableMouse bool

	// NoAltScreen draws on the main screen instead of the alternate one
	NoAltScreen bool

	// ReadBufferSize is the most input read at once. A key press or mouse
	// report must fit in a single read. Defaults to 128
	ReadBufferSize int
}

const defaultReadBufferSize = 128
