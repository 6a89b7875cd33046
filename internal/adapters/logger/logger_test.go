package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lineage/internal/adapters/logger"
)

func TestLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("resolving hierarchy")
	l.Warn("ancestor unreachable")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "resolving hierarchy")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "ancestor unreachable")
}

func TestLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_NilErrorIgnored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}
