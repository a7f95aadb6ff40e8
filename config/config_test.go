package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Cleanup(Reset)

	assert.Equal(t, 0.25, Physics.Gravity)
	assert.Equal(t, 6.0, Physics.MaxFallSpeed)
	assert.Equal(t, 30, Dash.Duration)
	assert.Equal(t, 2, Dash.Charges)
	assert.Equal(t, 110.0, Stamina.Max)
	assert.Equal(t, 16, Level.TileSize)
	assert.Equal(t, "map.json", Level.DefaultMapPath)
}

func TestLoadFileOverridesSomeFields(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
physics:
  gravity: 0.3
dash:
  charges: 3
level:
  spawn_variants: [2]
`), 0o644))

	require.NoError(t, LoadFile(path))

	assert.Equal(t, 0.3, Physics.Gravity)
	assert.Equal(t, 6.0, Physics.MaxFallSpeed, "unset fields keep defaults")
	assert.Equal(t, 3, Dash.Charges)
	assert.Equal(t, 30, Dash.Duration)
	assert.Equal(t, []int{2}, Level.SpawnVariants)
	assert.Equal(t, 1.5, Player.Speed)
}

func TestApplyRejectsUnknownKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte("physics:\n  gravityy: 1\n"))
	require.Error(t, err)
	assert.Equal(t, 0.25, Physics.Gravity)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		yaml string
	}{
		{"tile size", "level:\n  tile_size: 0\n"},
		{"dash window", "dash:\n  active_ticks: 40\n"},
		{"hold ticks", "jump:\n  max_hold_ticks: 0\n"},
		{"player size", "player:\n  width: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, Apply([]byte(tt.yaml)))
			assert.Equal(t, 16, Level.TileSize, "globals untouched on error")
			assert.Equal(t, 10, Dash.ActiveTicks)
		})
	}
}

func TestApplyEmpty(t *testing.T) {
	t.Cleanup(Reset)
	assert.NoError(t, Apply(nil))
	assert.Equal(t, 0.25, Physics.Gravity)
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStateIDString(t *testing.T) {
	assert.Equal(t, "wall_slide", StateWallSlide.String())
	assert.Equal(t, "none", StateID(-1).String())
}
