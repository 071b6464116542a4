package inkball

import (
	"github.com/plus3/inkball/ecs"
)

// SpawnSystem emits the next queued ball once the spawn interval has elapsed.
type SpawnSystem struct {
	Level *Level
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	l := s.Level
	l.spawnCounter++

	if l.spawnCounter < l.framesPerSpawn() || len(l.queue) == 0 {
		return
	}

	color, _ := l.popQueue()
	l.spawnCounter = 0
	l.spawnInterval = max(MinSpawnInterval, l.spawnInterval-SpawnIntervalDecay)

	if id, ok := l.spawnBall(color); ok {
		l.publish(frame, Event{Kind: EventSpawned, Ball: id, Color: color, Position: l.balls.Get(id).Position})
	}
}

// MotionSystem integrates ball positions.
type MotionSystem struct {
	Level *Level
}

func (s *MotionSystem) Execute(frame *ecs.UpdateFrame) {
	for _, b := range s.Level.balls.Iter() {
		b.Move()
	}
}

// ObstacleSystem resolves ball contacts against walls, then bricks.
type ObstacleSystem struct {
	Level *Level
}

func (s *ObstacleSystem) Execute(frame *ecs.UpdateFrame) {
	l := s.Level

	for _, id := range l.balls.Ids() {
		ball := l.balls.Get(id)

		for _, wall := range l.walls.Iter() {
			if contact := wall.Collide(id, ball); contact.Recolored {
				l.publish(frame, Event{Kind: EventRecolored, Ball: id, Color: ball.Color, Position: ball.Position})
			}
		}

		for _, brickId := range l.bricks.Ids() {
			brick := l.bricks.Get(brickId)
			if contact := brick.Collide(id, ball); contact.Broken {
				l.publish(frame, Event{Kind: EventBrickDestroyed, Ball: id, Color: brick.Color, Position: brick.Position})
				l.bricks.Delete(brickId)
			}
		}
	}
}

// StrokeSystem bounces balls off finished strokes. A stroke is consumed by its first contact.
type StrokeSystem struct {
	Level *Level
}

func (s *StrokeSystem) Execute(frame *ecs.UpdateFrame) {
	l := s.Level
	if l.strokes.Len() == 0 {
		return
	}

	for _, id := range l.balls.Ids() {
		ball := l.balls.Get(id)

		for _, strokeId := range l.strokes.Ids() {
			stroke := l.strokes.Get(strokeId)
			if !stroke.Touches(ball) {
				continue
			}

			ball.Velocity = stroke.Deflect(ball)
			l.strokes.Delete(strokeId)
			l.publish(frame, Event{Kind: EventStrokeConsumed, Ball: id, Color: ball.Color, Position: ball.Position})
		}
	}
}

// HoleSystem attracts balls toward holes and resolves captures.
type HoleSystem struct {
	Level *Level
}

func (s *HoleSystem) Execute(frame *ecs.UpdateFrame) {
	l := s.Level

	for _, id := range l.balls.Ids() {
		ball := l.balls.Get(id)

		for _, hole := range l.holes.Iter() {
			hole.Attract(ball)
			if !hole.Touches(ball) {
				continue
			}

			capture := hole.Resolve(ball, &l.scoring, l.score)
			if capture.Requeued {
				l.Enqueue(ball.Color)
			}

			kind := EventCaptured
			if !capture.Matched {
				kind = EventPenalized
			}
			l.publish(frame, Event{Kind: kind, Ball: id, Color: ball.Color, Points: capture.Points, Position: hole.Center()})

			l.removeBall(id)
			break
		}
	}
}

// CooldownSystem drops obstacle cooldowns held for balls that are gone.
type CooldownSystem struct {
	Level *Level
}

func (s *CooldownSystem) Execute(frame *ecs.UpdateFrame) {
	l := s.Level
	for _, wall := range l.walls.Iter() {
		wall.PurgeCooldowns(l.balls.Has)
	}
	for _, brick := range l.bricks.Iter() {
		brick.PurgeCooldowns(l.balls.Has)
	}
}
