package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nodegraph/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.Default())
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNewWritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "nodegraph.log")
	cfg.Log.Level = "debug"

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Debug("placed", zap.Int("node", 3))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "placed")
	assert.Contains(t, string(data), `"node": 3`)
}

func TestNewProductionWritesJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Environment = config.Production
	cfg.Log.File = filepath.Join(t.TempDir(), "nodegraph.log")
	cfg.Log.Level = "info"

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", zap.String("mode", "fill"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "fill", entry["mode"])
}

func TestNewBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "nodegraph.log")
	cfg.Log.Level = "chatty"

	_, err := New(cfg)
	assert.ErrorContains(t, err, "log level")
}
