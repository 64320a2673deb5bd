package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("info %s", "message")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	Warn("warn message")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	Error("error message")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	Debug("debug message")
	assert.Contains(t, buf.String(), "debug message")
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	WithField("path", "/tmp/x").Info("opened")
	out := buf.String()
	assert.Contains(t, out, "opened")
	assert.Contains(t, out, "path")
}
