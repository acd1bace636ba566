package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":                   "120",
		"seed":                   "-7",
		"tick_delta":             "8",
		"tick_sample":            "25",
		"grass_patch_count":      "3",
		"grass_patch_radius_min": "4",
		"grass_patch_radius_max": "2",
	})
	assert.Equal(t, 120, cfg.Size)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, 8.0, cfg.Params.TickDelta)
	assert.Equal(t, 25, cfg.Params.TickSample)
	assert.Equal(t, 3, cfg.Params.GrassPatchCount)
	// Max is never allowed below min.
	assert.Equal(t, 4, cfg.Params.GrassPatchRadiusMax)
}

func TestFromMapIgnoresJunk(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"size":       "not-a-number",
		"tick_delta": "-3",
	})
	assert.Equal(t, def.Size, cfg.Size)
	assert.Equal(t, def.Params.TickDelta, cfg.Params.TickDelta)
}

func TestValidateRejectsBadSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0
	assert.Error(t, cfg.Validate())
	cfg.Size = -4
	assert.Error(t, cfg.Validate())
	cfg.Size = 1
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	data := []byte("size: 96\nseed: 5\nparams:\n  tick_delta: 4\n  tick_sample: 20\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 96, cfg.Size)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 4.0, cfg.Params.TickDelta)
	assert.Equal(t, 20, cfg.Params.TickSample)
	// Unset params keep their defaults.
	assert.Equal(t, DefaultConfig().Params.GrassPatchCount, cfg.Params.GrassPatchCount)
}

func TestLoadFileRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: -1\n"), 0o644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
