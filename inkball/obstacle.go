package inkball

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/geom"
)

type ObstacleKind int

const (
	Wall ObstacleKind = iota
	Brick
)

func (k ObstacleKind) String() string {
	if k == Brick {
		return "brick"
	}
	return "wall"
}

// Obstacle is a static cell-sized box. Walls recolor balls that bounce off
// them; bricks count matching hits and break.
type Obstacle struct {
	Kind     ObstacleKind
	Position geom.Vec2
	Color    Color
	HitCount int

	// cooldowns holds the remaining response-suppression frames per ball.
	// A missing entry means zero.
	cooldowns *intmap.Map[ecs.EntityId, int]
}

// Contact describes the outcome of one Collide call.
type Contact struct {
	Overlapping bool
	Bounced     bool
	Recolored   bool
	Hit         bool
	Broken      bool
}

func NewObstacle(kind ObstacleKind, pos geom.Vec2, color Color) Obstacle {
	return Obstacle{
		Kind:      kind,
		Position:  pos,
		Color:     color,
		cooldowns: intmap.New[ecs.EntityId, int](8),
	}
}

func (o *Obstacle) Box() geom.Box {
	return geom.Box{Min: o.Position, Size: geom.V(CellSize, CellSize)}
}

func (o *Obstacle) Touches(b *Ball) bool {
	return geom.CircleOverlapsBox(b.Position, b.Radius, o.Box())
}

// Cooldown returns the remaining cooldown frames for the given ball.
func (o *Obstacle) Cooldown(ball ecs.EntityId) int {
	if o.cooldowns == nil {
		return 0
	}
	cd, _ := o.cooldowns.Get(ball)
	return cd
}

// CooldownCount returns the number of balls with a tracked cooldown.
func (o *Obstacle) CooldownCount() int {
	if o.cooldowns == nil {
		return 0
	}
	return o.cooldowns.Len()
}

// separation returns the push that moves the ball out of the box along the
// axis with the smallest face overlap, and that axis' outward normal.
func (o *Obstacle) separation(b *Ball) (geom.Vec2, geom.Vec2) {
	left := (b.Position.X + b.Radius) - o.Position.X
	right := (o.Position.X + CellSize) - (b.Position.X - b.Radius)
	top := (b.Position.Y + b.Radius) - o.Position.Y
	bottom := (o.Position.Y + CellSize) - (b.Position.Y - b.Radius)

	fromLeft := left < right
	fromTop := top < bottom

	minX, nx := right, 1.0
	if fromLeft {
		minX, nx = left, -1.0
	}
	minY, ny := bottom, 1.0
	if fromTop {
		minY, ny = top, -1.0
	}

	if minX < minY {
		n := geom.V(nx, 0)
		return n.Scale(minX), n
	}
	n := geom.V(0, ny)
	return n.Scale(minY), n
}

// Collide runs detection and response for one ball. While the ball's cooldown
// is positive only the positional correction is applied.
func (o *Obstacle) Collide(id ecs.EntityId, b *Ball) Contact {
	if o.cooldowns == nil {
		o.cooldowns = intmap.New[ecs.EntityId, int](8)
	}

	if !o.Touches(b) {
		o.cooldowns.Del(id)
		return Contact{}
	}

	push, normal := o.separation(b)
	b.Position = b.Position.Add(push)

	contact := Contact{Overlapping: true}
	if cd, _ := o.cooldowns.Get(id); cd > 0 {
		o.cooldowns.Put(id, cd-1)
		return contact
	}

	b.Velocity = b.Velocity.Reflect(normal)
	o.cooldowns.Put(id, CollisionCooldown)
	contact.Bounced = true

	switch o.Kind {
	case Wall:
		if o.Color != Grey && o.Color.Valid() {
			b.Color = o.Color
			contact.Recolored = true
		}
	case Brick:
		if o.Color == Grey || o.Color == b.Color {
			o.HitCount++
			contact.Hit = true
			contact.Broken = o.HitCount >= BrickHitLimit
		}
	}
	return contact
}

// PurgeCooldowns drops cooldown entries for balls that are no longer alive.
func (o *Obstacle) PurgeCooldowns(alive func(ecs.EntityId) bool) {
	if o.cooldowns == nil || o.cooldowns.Len() == 0 {
		return
	}

	var stale []ecs.EntityId
	o.cooldowns.ForEach(func(id ecs.EntityId, _ int) bool {
		if !alive(id) {
			stale = append(stale, id)
		}
		return true
	})
	for _, id := range stale {
		o.cooldowns.Del(id)
	}
}

// ForgetBall drops the cooldown entry for a single ball.
func (o *Obstacle) ForgetBall(id ecs.EntityId) {
	if o.cooldowns != nil {
		o.cooldowns.Del(id)
	}
}
