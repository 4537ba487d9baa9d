package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "json")

	logger.Debug("hidden")
	logger.Info("module activated", "module", "CRM")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "module activated", entry["msg"])
	assert.Equal(t, "CRM", entry["module"])
	assert.NotContains(t, entry, "source")
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, "text")

	logger.Debug("catalog cache miss")

	assert.Contains(t, buf.String(), "msg=\"catalog cache miss\"")
	assert.Contains(t, buf.String(), "source=")
}
