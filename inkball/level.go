package inkball

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/geom"
)

// LevelSettings are the per-level tunables resolved from configuration.
type LevelSettings struct {
	SpawnInterval float64
	Time          int
	Balls         []Color
	Scoring       Scoring
}

func DefaultLevelSettings() LevelSettings {
	return LevelSettings{
		SpawnInterval: DefaultSpawnInterval,
		Time:          DefaultLevelTime,
		Scoring:       DefaultScoring(),
	}
}

// Level owns every entity of one level and advances them one frame at a time.
type Level struct {
	balls    *ecs.Pool[Ball]
	walls    *ecs.Pool[Obstacle]
	bricks   *ecs.Pool[Obstacle]
	holes    *ecs.Pool[Hole]
	spawners *ecs.Pool[Spawner]
	strokes  *ecs.Pool[Stroke]

	drawing *Stroke

	queue         []Color
	spawnInterval float64
	spawnCounter  int

	scoring Scoring
	score   *Scoreboard
	rng     *rand.Rand
	size    geom.Vec2

	scheduler *ecs.Scheduler
	events    []Event
	completed bool
}

// NewLevel builds a level from a parsed layout. The level adds to and deducts
// from score, which usually outlives it. The same seed always produces the
// same run for the same inputs.
func NewLevel(settings LevelSettings, layout *Layout, score *Scoreboard, seed uint64) *Level {
	if score == nil {
		score = NewScoreboard(0)
	}

	l := &Level{
		balls:         ecs.NewPool[Ball](),
		walls:         ecs.NewPool[Obstacle](),
		bricks:        ecs.NewPool[Obstacle](),
		holes:         ecs.NewPool[Hole](),
		spawners:      ecs.NewPool[Spawner](),
		strokes:       ecs.NewPool[Stroke](),
		queue:         slices.Clone(settings.Balls),
		spawnInterval: max(MinSpawnInterval, settings.SpawnInterval),
		scoring:       settings.Scoring,
		score:         score,
		rng:           rand.New(rand.NewPCG(seed, 0x5bd1e995)),
		size:          layout.Size(),
	}

	if layout != nil {
		for _, t := range layout.Walls {
			l.AddWall(t.Position, t.Color)
		}
		for _, t := range layout.Bricks {
			l.AddBrick(t.Position, t.Color)
		}
		for _, t := range layout.Holes {
			l.AddHole(t.Position, t.Color)
		}
		for _, p := range layout.Spawners {
			l.AddSpawner(p)
		}
		for _, t := range layout.Balls {
			l.AddBall(NewBall(t.Position, t.Color, l.rng))
		}
	}

	l.scheduler = ecs.NewScheduler()
	l.scheduler.Register(&SpawnSystem{Level: l})
	l.scheduler.Register(&MotionSystem{Level: l})
	l.scheduler.Register(&ObstacleSystem{Level: l})
	l.scheduler.Register(&StrokeSystem{Level: l})
	l.scheduler.Register(&HoleSystem{Level: l})
	l.scheduler.Register(&CooldownSystem{Level: l})

	return l
}

// Update advances the level by one frame. It returns true only on the frame
// the level first becomes complete.
func (l *Level) Update(dt time.Duration) bool {
	l.events = l.events[:0]
	l.scheduler.Once(dt.Seconds())

	if l.completed || !l.IsCompleted() {
		return false
	}

	l.completed = true
	l.events = append(l.events, Event{Kind: EventLevelCompleted, Tick: l.scheduler.Tick() - 1})
	return true
}

// IsCompleted reports whether the spawn queue and the active ball set are both empty.
func (l *Level) IsCompleted() bool {
	return len(l.queue) == 0 && l.balls.Len() == 0
}

// Events returns the events published during the last Update.
func (l *Level) Events() []Event {
	return slices.Clone(l.events)
}

func (l *Level) Stats() *ecs.SchedulerStats {
	return l.scheduler.GetStats()
}

// Pools exposes the level's entity storage to debug tooling. Edits made
// through it take effect on the next Update.
type Pools struct {
	Balls    *ecs.Pool[Ball]
	Walls    *ecs.Pool[Obstacle]
	Bricks   *ecs.Pool[Obstacle]
	Holes    *ecs.Pool[Hole]
	Spawners *ecs.Pool[Spawner]
	Strokes  *ecs.Pool[Stroke]
}

func (l *Level) Pools() Pools {
	return Pools{
		Balls:    l.balls,
		Walls:    l.walls,
		Bricks:   l.bricks,
		Holes:    l.holes,
		Spawners: l.spawners,
		Strokes:  l.strokes,
	}
}

// Tick returns the number of frames simulated so far.
func (l *Level) Tick() uint64 {
	return l.scheduler.Tick()
}

func (l *Level) Size() geom.Vec2 {
	return l.size
}

func (l *Level) Score() int {
	return l.score.Points()
}

func (l *Level) Scoring() Scoring {
	return l.scoring
}

func (l *Level) AddBall(b Ball) ecs.EntityId {
	return l.balls.Spawn(b)
}

func (l *Level) AddWall(pos geom.Vec2, color Color) ecs.EntityId {
	return l.walls.Spawn(NewObstacle(Wall, pos, color))
}

func (l *Level) AddBrick(pos geom.Vec2, color Color) ecs.EntityId {
	return l.bricks.Spawn(NewObstacle(Brick, pos, color))
}

func (l *Level) AddHole(pos geom.Vec2, color Color) ecs.EntityId {
	return l.holes.Spawn(Hole{Position: pos, Color: color})
}

func (l *Level) AddSpawner(pos geom.Vec2) ecs.EntityId {
	return l.spawners.Spawn(Spawner{Position: pos})
}

// AddStroke adds an already finished stroke.
func (l *Level) AddStroke(points ...geom.Vec2) ecs.EntityId {
	return l.strokes.Spawn(Stroke{Points: slices.Clone(points)})
}

// Enqueue appends colors to the back of the spawn queue.
func (l *Level) Enqueue(colors ...Color) {
	l.queue = append(l.queue, colors...)
}

// Ball returns a copy of the ball with the given handle.
func (l *Level) Ball(id ecs.EntityId) (Ball, bool) {
	b := l.balls.Get(id)
	if b == nil {
		return Ball{}, false
	}
	return *b, true
}

func (l *Level) BallIds() []ecs.EntityId {
	return l.balls.Ids()
}

func (l *Level) Balls() []Ball {
	return l.balls.Values()
}

func (l *Level) Walls() []Obstacle {
	return l.walls.Values()
}

// Brick returns a copy of the brick with the given handle. Broken bricks are gone.
func (l *Level) Brick(id ecs.EntityId) (Obstacle, bool) {
	b := l.bricks.Get(id)
	if b == nil {
		return Obstacle{}, false
	}
	return *b, true
}

func (l *Level) Bricks() []Obstacle {
	return l.bricks.Values()
}

func (l *Level) Holes() []Hole {
	return l.holes.Values()
}

func (l *Level) Spawners() []Spawner {
	return l.spawners.Values()
}

func (l *Level) HasStroke(id ecs.EntityId) bool {
	return l.strokes.Has(id)
}

// Strokes returns copies of every finished stroke.
func (l *Level) Strokes() []Stroke {
	strokes := make([]Stroke, 0, l.strokes.Len())
	for _, s := range l.strokes.Iter() {
		strokes = append(strokes, s.clone())
	}
	return strokes
}

// DrawingStroke returns the stroke currently being drawn, if any.
func (l *Level) DrawingStroke() (Stroke, bool) {
	if l.drawing == nil {
		return Stroke{}, false
	}
	return l.drawing.clone(), true
}

// BeginStroke starts a new stroke at p, discarding any stroke still being drawn.
func (l *Level) BeginStroke(p geom.Vec2) {
	l.drawing = &Stroke{Points: []geom.Vec2{p}, Dragging: true}
}

// ExtendStroke appends p to the stroke being drawn. Repeating the last point
// is ignored. A stroke that touches a ball while being drawn is discarded.
func (l *Level) ExtendStroke(p geom.Vec2) {
	if l.drawing == nil || !l.drawing.Dragging {
		return
	}

	if last := l.drawing.Points[len(l.drawing.Points)-1]; last == p {
		return
	}

	l.drawing.Points = append(l.drawing.Points, p)
	for _, b := range l.balls.Iter() {
		if l.drawing.Touches(b) {
			l.drawing = nil
			return
		}
	}
}

// EndStroke finishes the stroke being drawn and adds it to the level.
func (l *Level) EndStroke() {
	if l.drawing == nil {
		return
	}

	l.drawing.Dragging = false
	l.strokes.Spawn(*l.drawing)
	l.drawing = nil
}

// RemoveStrokeAt removes the first finished stroke passing within
// StrokePickThreshold of p.
func (l *Level) RemoveStrokeAt(p geom.Vec2) bool {
	for id, s := range l.strokes.Iter() {
		if s.NearPoint(p, StrokePickThreshold) {
			return l.strokes.Delete(id)
		}
	}
	return false
}

// RespawnBall reinitializes a ball in place, keeping its handle.
func (l *Level) RespawnBall(id ecs.EntityId) bool {
	b := l.balls.Get(id)
	if b == nil {
		return false
	}

	b.Respawn(l.rng, l.size)
	l.forgetBall(id)
	return true
}

// removeBall deletes a ball and every cooldown entry that refers to it.
func (l *Level) removeBall(id ecs.EntityId) {
	if l.balls.Delete(id) {
		l.forgetBall(id)
	}
}

func (l *Level) forgetBall(id ecs.EntityId) {
	for _, w := range l.walls.Iter() {
		w.ForgetBall(id)
	}
	for _, b := range l.bricks.Iter() {
		b.ForgetBall(id)
	}
}
