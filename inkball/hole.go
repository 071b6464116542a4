package inkball

import (
	"math"

	"github.com/plus3/inkball/geom"
)

// Hole occupies a 2x2 cell area anchored at Position. Balls are pulled toward
// its center and captured once the center is within the ball's radius.
type Hole struct {
	Position geom.Vec2
	Color    Color
}

func (h *Hole) Center() geom.Vec2 {
	return h.Position.Add(geom.V(CellSize, CellSize))
}

// Touches reports whether the ball has reached the capture point.
func (h *Hole) Touches(b *Ball) bool {
	return h.Center().Dist(b.Position) < b.Radius
}

// Attract pulls the ball toward the center and shrinks it while it is in
// range, restoring its size otherwise. It returns the distance between the
// ball and the hole center before the pull.
func (h *Hole) Attract(b *Ball) float64 {
	dir := h.Center().Sub(b.Position)
	dist := dir.Len()

	if dist < AttractionRange {
		b.ApplyForce(dir.Normalize().Scale(AttractionStrength * dist))
		b.SetRadius(math.Max(b.OriginalRadius*(dist/AttractionRange), MinCaptureRadius))
	} else {
		b.SetRadius(b.OriginalRadius)
	}
	return dist
}

// Capture is the result of a ball reaching a hole.
type Capture struct {
	Matched bool
	// Points is the score delta that was applied, negative for a penalty.
	Points int
	// Requeued is set when the ball color went back into the spawn queue.
	Requeued bool
}

// Resolve scores a ball that reached the hole. The caller removes the ball.
func (h *Hole) Resolve(b *Ball, scoring *Scoring, board *Scoreboard) Capture {
	if b.Color.Matches(h.Color) {
		gained := board.Add(scoring.Reward(b.Color))
		return Capture{Matched: true, Points: gained}
	}

	lost := board.Deduct(scoring.Penalty(b.Color))
	return Capture{
		Points:   -lost,
		Requeued: !b.Color.IsWildcard() && !h.Color.IsWildcard(),
	}
}
