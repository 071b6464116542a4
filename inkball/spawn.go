package inkball

import (
	"slices"

	"github.com/plus3/inkball/ecs"
)

// framesPerSpawn is the number of frames between two emissions at the current interval.
func (l *Level) framesPerSpawn() int {
	return int(l.spawnInterval*FrameRate + 1e-9)
}

func (l *Level) SpawnInterval() float64 {
	return l.spawnInterval
}

func (l *Level) SpawnCounter() int {
	return l.spawnCounter
}

// Countdown returns the seconds left until the next emission, or zero when
// nothing is queued.
func (l *Level) Countdown() float64 {
	if len(l.queue) == 0 {
		return 0
	}
	return max(0, l.spawnInterval*FrameRate-float64(l.spawnCounter)) / FrameRate
}

// Queue returns a copy of the pending spawn queue.
func (l *Level) Queue() []Color {
	return slices.Clone(l.queue)
}

// Upcoming returns at most n colors from the front of the spawn queue.
// Unknown colors are consumed by the spawner without a ball and are skipped.
func (l *Level) Upcoming(n int) []Color {
	upcoming := make([]Color, 0, min(max(n, 0), len(l.queue)))
	for _, c := range l.queue {
		if len(upcoming) >= n {
			break
		}
		if c.Valid() {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming
}

// popQueue removes the front color of the spawn queue.
func (l *Level) popQueue() (Color, bool) {
	if len(l.queue) == 0 {
		return ColorInvalid, false
	}
	color := l.queue[0]
	l.queue = slices.Delete(l.queue, 0, 1)
	return color, true
}

// spawnBall emits a ball of the given color at a random spawner. Nothing is
// emitted for an invalid color or a level without spawners.
func (l *Level) spawnBall(color Color) (ecs.EntityId, bool) {
	if !color.Valid() || l.spawners.Len() == 0 {
		return 0, false
	}

	spawners := l.spawners.Values()
	spawner := spawners[l.rng.IntN(len(spawners))]
	return l.balls.Spawn(NewBall(spawner.SpawnPoint(), color, l.rng)), true
}
