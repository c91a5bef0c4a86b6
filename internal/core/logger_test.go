// AngelaMos | 2026
// logger_test.go

package core

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/config"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, sync := newLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("product created", "product_id", 7)
	require.NoError(t, sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "product created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 7, entry["product_id"])
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	var buf bytes.Buffer
	logger, sync := newLogger(config.LogConfig{Level: "debug", Format: "console", File: path}, &buf)

	logger.Debug("cache warmed")
	require.NoError(t, sync())

	assert.Contains(t, buf.String(), "cache warmed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache warmed")
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := newLogger(config.LogConfig{Level: "loud", Format: "json"}, &buf)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}
