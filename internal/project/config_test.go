package project

import (
	"path/filepath"
	"testing"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfig_LoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := model.DefaultConfig()
	cfg.Envelope.Length = 264
	cfg.DeptPriority = map[string]int{"LX": 1, "SON": 2}

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 264.0, loaded.Envelope.Length)
	assert.Equal(t, cfg.MinFill, loaded.MinFill)
	assert.Equal(t, 2, loaded.DeptPriority["SON"])
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), loaded)
}

func TestDefaultConfigPath_LivesUnderDotWallplanner(t *testing.T) {
	path := DefaultConfigPath()
	assert.Equal(t, "config.json", filepath.Base(path))
	assert.Equal(t, ".wallplanner", filepath.Base(filepath.Dir(path)))
}
