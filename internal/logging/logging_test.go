package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewHandler(&buf, "warn", "json")
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("hidden")
	logger.Warn("shown", "estimate_id", "e-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "e-1", entry["estimate_id"])
}

func TestNewHandler_RejectsUnknownValues(t *testing.T) {
	_, err := NewHandler(&bytes.Buffer{}, "verbose", "console")
	assert.Error(t, err)

	_, err = NewHandler(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
