package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo, false)

	logger.Info("boom", "error", "bad thing")
	logger.Debug("hidden")

	assert.Contains(t, buf.String(), "err=\"bad thing\"")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelDebug, true)

	logger.Debug("step started", "id", 1)

	assert.Contains(t, buf.String(), `"msg":"step started"`)
	assert.Contains(t, buf.String(), `"id":1`)
}
