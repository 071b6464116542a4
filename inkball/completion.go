package inkball

import (
	"time"

	"github.com/plus3/inkball/geom"
)

// Marker is a tile that walks the border of the play area clockwise.
// Edges are numbered top 0, right 1, bottom 2, left 3.
type Marker struct {
	Position geom.Vec2
	Edge     int
	Step     int
	Loops    int
}

// Completion pays out the remaining level time as bonus points while two
// markers circle the play area.
type Completion struct {
	bonus   int
	markers [2]Marker

	bonusElapsed time.Duration
	moveElapsed  time.Duration

	cols, rows int
}

// NewCompletion starts the animation for a play area of the given size.
// Markers begin at the top-left corner heading right and at the
// bottom-right corner heading left.
func NewCompletion(bonus int, size geom.Vec2) *Completion {
	return &Completion{
		bonus: max(0, bonus),
		markers: [2]Marker{
			{Position: geom.V(0, 0), Edge: 0},
			{Position: geom.V(size.X-CellSize, size.Y-CellSize), Edge: 2},
		},
		cols: int(size.X) / CellSize,
		rows: int(size.Y) / CellSize,
	}
}

func (c *Completion) Bonus() int {
	return c.bonus
}

func (c *Completion) Markers() []Marker {
	return c.markers[:]
}

// Done reports whether the bonus is paid out and both markers have looped.
func (c *Completion) Done() bool {
	if c.bonus > 0 {
		return false
	}
	for _, m := range c.markers {
		if m.Loops < 1 {
			return false
		}
	}
	return true
}

// Update advances the animation by dt, moving one bonus point into score on
// every cadence tick. Time left over after a tick carries into the next one.
// It returns true once Done.
func (c *Completion) Update(dt time.Duration, score *Scoreboard) bool {
	if c.bonus > 0 {
		c.bonusElapsed += dt
		if c.bonusElapsed >= CompletionCadence {
			c.bonus--
			score.Add(1)
			c.bonusElapsed -= CompletionCadence
		}
	}

	c.moveElapsed += dt
	if c.moveElapsed >= CompletionCadence {
		for i := range c.markers {
			c.advance(&c.markers[i])
		}
		c.moveElapsed -= CompletionCadence
	}

	return c.Done()
}

func (c *Completion) edgeLength(edge int) int {
	if edge%2 == 0 {
		return c.cols - 1
	}
	return c.rows - 1
}

// advance moves a marker one cell. Turning onto a new edge moves it along the
// new edge in the same step, except when finishing the left edge, which only
// counts a loop.
func (c *Completion) advance(m *Marker) {
	for range 4 {
		if m.Step < c.edgeLength(m.Edge) {
			switch m.Edge {
			case 0:
				m.Position.X += CellSize
			case 1:
				m.Position.Y += CellSize
			case 2:
				m.Position.X -= CellSize
			case 3:
				m.Position.Y -= CellSize
			}
			m.Step++
			return
		}

		m.Step = 0
		if m.Edge == 3 {
			m.Edge = 0
			m.Loops++
			return
		}
		m.Edge++
	}
}
