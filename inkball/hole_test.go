package inkball_test

import (
	"testing"

	"github.com/plus3/inkball/geom"
	"github.com/plus3/inkball/inkball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScoring() inkball.Scoring {
	return inkball.Scoring{
		Increase:           inkball.ScoreTable{"grey": 70, "orange": 50, "blue": 50},
		Decrease:           inkball.ScoreTable{"grey": 0, "orange": 25, "blue": 25},
		IncreaseMultiplier: 1.5,
		DecreaseMultiplier: 2.0,
	}
}

func TestHoleAttract(t *testing.T) {
	hole := inkball.Hole{Position: geom.V(52, 52), Color: inkball.Orange}
	assert.Equal(t, geom.V(84, 84), hole.Center())

	ball := testBall(100, 100, 0, 0, inkball.Orange)
	dist := hole.Attract(&ball)

	assert.InDelta(t, 22.627, dist, 1e-3)
	assert.Less(t, ball.Velocity.X, 0.0)
	assert.Less(t, ball.Velocity.Y, 0.0)
	assert.InDelta(t, 0.005*dist, ball.Velocity.Len(), 1e-9)
	assert.InDelta(t, 12*dist/32, ball.Radius, 1e-9)

	// Close in: radius is floored.
	ball.Position = geom.V(86, 86)
	hole.Attract(&ball)
	assert.Equal(t, inkball.MinCaptureRadius, ball.Radius)

	// Out of range: radius restored, velocity untouched.
	ball.Position = geom.V(300, 300)
	before := ball.Velocity
	hole.Attract(&ball)
	assert.Equal(t, inkball.BallRadius, ball.Radius)
	assert.Equal(t, before, ball.Velocity)
}

func TestHoleResolve(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		scoring := testScoring()
		board := inkball.NewScoreboard(10)
		hole := inkball.Hole{Color: inkball.Orange}
		ball := testBall(0, 0, 0, 0, inkball.Orange)

		capture := hole.Resolve(&ball, &scoring, board)
		assert.True(t, capture.Matched)
		assert.Equal(t, 75, capture.Points)
		assert.Equal(t, 85, board.Points())
	})

	t.Run("wildcard ball", func(t *testing.T) {
		scoring := testScoring()
		board := inkball.NewScoreboard(0)
		hole := inkball.Hole{Color: inkball.Blue}
		ball := testBall(0, 0, 0, 0, inkball.Grey)

		capture := hole.Resolve(&ball, &scoring, board)
		assert.True(t, capture.Matched)
		assert.Equal(t, 105, board.Points())
	})

	t.Run("mismatch deducts and requeues", func(t *testing.T) {
		scoring := testScoring()
		board := inkball.NewScoreboard(100)
		hole := inkball.Hole{Color: inkball.Blue}
		ball := testBall(0, 0, 0, 0, inkball.Orange)

		capture := hole.Resolve(&ball, &scoring, board)
		assert.False(t, capture.Matched)
		assert.True(t, capture.Requeued)
		assert.Equal(t, -50, capture.Points)
		assert.Equal(t, 50, board.Points())
	})

	t.Run("penalty clamps at zero", func(t *testing.T) {
		scoring := testScoring()
		board := inkball.NewScoreboard(20)
		hole := inkball.Hole{Color: inkball.Blue}
		ball := testBall(0, 0, 0, 0, inkball.Orange)

		capture := hole.Resolve(&ball, &scoring, board)
		assert.Equal(t, -20, capture.Points)
		assert.Equal(t, 0, board.Points())
	})

	t.Run("missing tables change nothing", func(t *testing.T) {
		scoring := inkball.Scoring{IncreaseMultiplier: 1, DecreaseMultiplier: 1}
		board := inkball.NewScoreboard(5)
		hole := inkball.Hole{Color: inkball.Orange}

		ball := testBall(0, 0, 0, 0, inkball.Orange)
		assert.Equal(t, 0, hole.Resolve(&ball, &scoring, board).Points)

		ball.Color = inkball.Blue
		assert.Equal(t, 0, hole.Resolve(&ball, &scoring, board).Points)
		assert.Equal(t, 5, board.Points())
	})
}

func TestLevelCapturesBallApproachingHole(t *testing.T) {
	settings := inkball.DefaultLevelSettings()
	settings.Scoring = testScoring()
	level := emptyLevel(settings)
	level.AddHole(geom.V(52, 52), inkball.Orange)
	level.AddBall(testBall(100, 100, -2, -2, inkball.Orange))

	captured := false
	for i := 0; i < 30 && !captured; i++ {
		level.Update(inkball.FrameDuration)
		for _, b := range level.Balls() {
			assert.GreaterOrEqual(t, b.Radius, inkball.MinCaptureRadius)
		}
		captured = len(eventsOfKind(level.Events(), inkball.EventCaptured)) == 1
	}

	require.True(t, captured)
	assert.Empty(t, level.Balls())
	assert.Equal(t, 75, level.Score())
	assert.True(t, level.IsCompleted())
}

func TestLevelWrongHoleRequeues(t *testing.T) {
	settings := inkball.DefaultLevelSettings()
	settings.Scoring = testScoring()
	level := emptyLevel(settings)
	level.AddHole(geom.V(0, 0), inkball.Blue)
	level.AddBall(testBall(32, 32, 0, 0, inkball.Orange))

	step(t, level, 1)

	penalized := eventsOfKind(level.Events(), inkball.EventPenalized)
	require.Len(t, penalized, 1)
	assert.Equal(t, inkball.Orange, penalized[0].Color)
	assert.Empty(t, level.Balls())
	assert.Equal(t, []inkball.Color{inkball.Orange}, level.Queue())
	assert.Equal(t, 0, level.Score())
	assert.False(t, level.IsCompleted())
}

func TestLevelWildcardHoleMismatchNeverRequeues(t *testing.T) {
	settings := inkball.DefaultLevelSettings()
	level := emptyLevel(settings)
	level.AddHole(geom.V(0, 0), inkball.Grey)
	level.AddBall(testBall(32, 32, 0, 0, inkball.Orange))

	step(t, level, 1)

	assert.Len(t, eventsOfKind(level.Events(), inkball.EventCaptured), 1)
	assert.Empty(t, level.Queue())
}

func TestCapturedBallSkipsRemainingHoles(t *testing.T) {
	settings := inkball.DefaultLevelSettings()
	settings.Scoring = testScoring()
	level := emptyLevel(settings)
	level.AddHole(geom.V(0, 0), inkball.Orange)
	level.AddHole(geom.V(0, 0), inkball.Blue)
	level.AddBall(testBall(32, 32, 0, 0, inkball.Orange))

	step(t, level, 1)

	events := level.Events()
	assert.Len(t, eventsOfKind(events, inkball.EventCaptured), 1)
	assert.Empty(t, eventsOfKind(events, inkball.EventPenalized))
	assert.Empty(t, level.Queue())
}
