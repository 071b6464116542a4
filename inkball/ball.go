package inkball

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/inkball/geom"
)

// Ball is the only moving entity. Position is the ball center.
type Ball struct {
	Position       geom.Vec2
	Velocity       geom.Vec2
	Radius         float64
	OriginalRadius float64
	Color          Color
}

// NewBall creates a full-size ball whose velocity components are each
// independently +BallSpeed or -BallSpeed.
func NewBall(pos geom.Vec2, color Color, rng *rand.Rand) Ball {
	return Ball{
		Position:       pos,
		Velocity:       randomVelocity(rng),
		Radius:         BallRadius,
		OriginalRadius: BallRadius,
		Color:          color,
	}
}

func randomVelocity(rng *rand.Rand) geom.Vec2 {
	return geom.V(randomComponent(rng), randomComponent(rng))
}

func randomComponent(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -BallSpeed
	}
	return BallSpeed
}

// SetRadius updates the radius, clamping it to zero.
func (b *Ball) SetRadius(r float64) {
	b.Radius = math.Max(0, r)
}

func (b *Ball) Move() {
	b.Position = b.Position.Add(b.Velocity)
}

func (b *Ball) ApplyForce(force geom.Vec2) {
	b.Velocity = b.Velocity.Add(force)
}

// Touches reports whether two balls overlap. Ball-ball contacts are never resolved.
func (b *Ball) Touches(o *Ball) bool {
	return b.Position.Dist(o.Position) < b.Radius+o.Radius
}

// Respawn reinitializes the ball in place: a random position inside size,
// a fresh random velocity, its original radius and the wildcard color.
func (b *Ball) Respawn(rng *rand.Rand, size geom.Vec2) {
	b.Position = geom.V(rng.Float64()*size.X, rng.Float64()*size.Y)
	b.Velocity = randomVelocity(rng)
	b.Radius = b.OriginalRadius
	b.Color = Grey
}

// Collider is implemented by everything a ball can come into contact with.
type Collider interface {
	Touches(b *Ball) bool
}

var (
	_ Collider = (*Ball)(nil)
	_ Collider = (*Obstacle)(nil)
	_ Collider = (*Stroke)(nil)
	_ Collider = (*Hole)(nil)
)
