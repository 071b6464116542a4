package assets_test

import (
	"testing"

	"github.com/plus3/inkball/assets"
	"github.com/plus3/inkball/inkball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssets(t *testing.T) {
	cfg, err := inkball.LoadConfig(assets.FS, assets.ConfigFile)
	require.NoError(t, err)
	assert.Empty(t, cfg.Undecoded)
	require.Len(t, cfg.Levels, 3)

	for i := range cfg.Levels {
		layout, err := cfg.LoadLayout(assets.FS, i)
		require.NoError(t, err)
		assert.Equal(t, inkball.BoardCols, layout.Cols, "level %d", i)
		assert.Equal(t, inkball.BoardRows, layout.Rows, "level %d", i)
		assert.NotEmpty(t, layout.Holes, "level %d", i)
		assert.NotEmpty(t, layout.Spawners, "level %d", i)

		settings, err := cfg.Settings(i)
		require.NoError(t, err)
		for _, c := range settings.Balls {
			assert.True(t, c.Valid(), "level %d", i)
		}
	}

	session, err := inkball.NewSession(cfg, assets.FS)
	require.NoError(t, err)
	assert.Equal(t, 3, session.LevelCount())
}
