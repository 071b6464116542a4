package inkball_test

import (
	"testing"
	"time"

	"github.com/plus3/inkball/geom"
	"github.com/plus3/inkball/inkball"
)

func testBall(x, y, vx, vy float64, color inkball.Color) inkball.Ball {
	return inkball.Ball{
		Position:       geom.V(x, y),
		Velocity:       geom.V(vx, vy),
		Radius:         inkball.BallRadius,
		OriginalRadius: inkball.BallRadius,
		Color:          color,
	}
}

func emptyLevel(settings inkball.LevelSettings) *inkball.Level {
	return inkball.NewLevel(settings, nil, inkball.NewScoreboard(0), 1)
}

func step(t *testing.T, l *inkball.Level, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		l.Update(inkball.FrameDuration)
	}
}

func eventsOfKind(events []inkball.Event, kind inkball.EventKind) []inkball.Event {
	var out []inkball.Event
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

const completionStep = 67 * time.Millisecond
