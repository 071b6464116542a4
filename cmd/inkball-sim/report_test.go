package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/inkball/inkball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	level := inkball.NewLevel(inkball.DefaultLevelSettings(), nil, nil, 1)
	level.Update(inkball.FrameDuration)

	report := &Report{
		Seed:       7,
		MaxFrames:  100,
		Levels:     2,
		State:      inkball.Finished.String(),
		LevelIndex: 1,
		Score:      140,
		Events:     map[string]int{"captured": 2, "spawned": 2},
	}
	report.AddLevel(level)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Seed:** 7")
	assert.Contains(t, out, "**State:** finished")
	assert.Contains(t, out, "**Level Reached:** 2 / 2")
	assert.Contains(t, out, "**Score:** 140")
	assert.Contains(t, out, "- captured: 2")
	assert.Contains(t, out, "### Level 1 (1 ticks)")
	assert.Contains(t, out, "- HoleSystem: runs 1")
}

func TestLoadEmbeddedConfig(t *testing.T) {
	cfg, layouts, err := loadConfig("")
	require.NoError(t, err)

	session, err := inkball.NewSession(cfg, layouts)
	require.NoError(t, err)
	assert.Equal(t, len(cfg.Levels), session.LevelCount())
}
