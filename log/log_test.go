package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(nopWriter{})
	SetLevel(LevelDebug)
	defer SetLevel(LevelError)

	Trace("hidden")
	Debug("shown", "key", "val")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "key=val")
	assert.Contains(t, buf.String(), "pid=")

	buf.Reset()
	SetLevel(LevelTrace)
	Trace("traced")
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), "msg=traced")
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
