package inkball_test

import (
	"strings"
	"testing"

	"github.com/plus3/inkball/geom"
	"github.com/plus3/inkball/inkball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelCompletion(t *testing.T) {
	level := emptyLevel(inkball.DefaultLevelSettings())
	assert.True(t, level.IsCompleted())

	level.Enqueue(inkball.Orange)
	assert.False(t, level.IsCompleted())

	other := emptyLevel(inkball.DefaultLevelSettings())
	other.AddBall(testBall(100, 100, 0, 0, inkball.Orange))
	assert.False(t, other.IsCompleted())
}

func TestLevelUpdateReportsCompletionOnce(t *testing.T) {
	level := emptyLevel(inkball.DefaultLevelSettings())

	assert.True(t, level.Update(inkball.FrameDuration))
	assert.Len(t, eventsOfKind(level.Events(), inkball.EventLevelCompleted), 1)

	assert.False(t, level.Update(inkball.FrameDuration))
	assert.Empty(t, level.Events())
}

func TestLevelMotion(t *testing.T) {
	level := emptyLevel(inkball.DefaultLevelSettings())
	id := level.AddBall(testBall(100, 100, 2, -2, inkball.Orange))

	step(t, level, 10)

	b, ok := level.Ball(id)
	require.True(t, ok)
	assert.Equal(t, geom.V(120, 80), b.Position)
	assert.Equal(t, geom.V(2, -2), b.Velocity)
}

func TestLevelFromLayout(t *testing.T) {
	layout, err := inkball.ParseLayout(strings.NewReader("XXXX\nSH1 \nB2E3\n"))
	require.NoError(t, err)

	settings := inkball.DefaultLevelSettings()
	settings.Balls = []inkball.Color{inkball.Green}
	level := inkball.NewLevel(settings, layout, nil, 7)

	assert.Len(t, level.Walls(), 4)
	assert.Len(t, level.Spawners(), 1)
	assert.Len(t, level.Holes(), 1)
	assert.Len(t, level.Bricks(), 1)

	balls := level.Balls()
	require.Len(t, balls, 1)
	assert.Equal(t, geom.V(0, 64), balls[0].Position)
	assert.Equal(t, inkball.Blue, balls[0].Color)
	assert.Equal(t, geom.V(128, 96), level.Size())
	assert.Equal(t, 0, level.Score())
}

func TestLevelRespawnBall(t *testing.T) {
	level := emptyLevel(inkball.DefaultLevelSettings())
	id := level.AddBall(testBall(100, 100, 0.5, 0.5, inkball.Orange))

	require.True(t, level.RespawnBall(id))

	b, ok := level.Ball(id)
	require.True(t, ok)
	assert.Equal(t, inkball.Grey, b.Color)
	assert.Equal(t, inkball.BallRadius, b.Radius)
	assert.Len(t, level.Balls(), 1)
	assert.Less(t, b.Position.X, float64(inkball.BoardWidth))
	assert.Less(t, b.Position.Y, float64(inkball.BoardHeight))
}

func TestLevelStats(t *testing.T) {
	level := emptyLevel(inkball.DefaultLevelSettings())
	step(t, level, 3)

	stats := level.Stats()
	assert.Equal(t, uint64(3), stats.Frames)
	assert.Equal(t, uint64(3), level.Tick())

	var names []string
	for _, sys := range stats.Systems {
		names = append(names, sys.Name)
		assert.Equal(t, int64(3), sys.ExecutionCount)
	}
	assert.Equal(t, []string{
		"SpawnSystem",
		"MotionSystem",
		"ObstacleSystem",
		"StrokeSystem",
		"HoleSystem",
		"CooldownSystem",
	}, names)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "brick-destroyed", inkball.EventBrickDestroyed.String())
	assert.Equal(t, "unknown", inkball.EventKind(99).String())
	assert.Len(t, inkball.EventKinds(), 7)
}
