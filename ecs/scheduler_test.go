package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/inkball/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Positions *ecs.Pool[Position]
	ticks     []uint64
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ticks = append(s.ticks, frame.Tick)
	for _, pos := range s.Positions.Iter() {
		pos.X += float32(frame.DeltaTime)
	}
}

type CleanupSystem struct {
	Positions *ecs.Pool[Position]
}

func (s *CleanupSystem) Execute(frame *ecs.UpdateFrame) {
	for _, id := range s.Positions.Ids() {
		if s.Positions.Get(id).X > 2 {
			s.Positions.Delete(id)
		}
	}
}

func TestScheduler(t *testing.T) {
	t.Run("systems execute in registration order", func(t *testing.T) {
		positions := ecs.NewPool[Position]()
		positions.Spawn(Position{X: 0})
		positions.Spawn(Position{X: 2})

		movement := &MovementSystem{Positions: positions}
		scheduler := ecs.NewScheduler()
		scheduler.Register(movement)
		scheduler.Register(&CleanupSystem{Positions: positions})

		scheduler.Once(1.0)

		assert.Equal(t, 1, positions.Len())
		assert.Equal(t, []Position{{X: 1}}, positions.Values())
	})

	t.Run("frames carry a monotonically increasing tick", func(t *testing.T) {
		movement := &MovementSystem{Positions: ecs.NewPool[Position]()}
		scheduler := ecs.NewScheduler()
		scheduler.Register(movement)

		for i := 0; i < 3; i++ {
			scheduler.Once(0.5)
		}

		assert.Equal(t, []uint64{0, 1, 2}, movement.ticks)
		assert.Equal(t, uint64(3), scheduler.Tick())
	})

	t.Run("run stops when the context is cancelled", func(t *testing.T) {
		movement := &MovementSystem{Positions: ecs.NewPool[Position]()}
		scheduler := ecs.NewScheduler()
		scheduler.Register(movement)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		scheduler.Run(ctx, 5*time.Millisecond)
		assert.NotEmpty(t, movement.ticks)
	})
}

func TestSchedulerStats(t *testing.T) {
	positions := ecs.NewPool[Position]()
	scheduler := ecs.NewScheduler()
	scheduler.Register(&MovementSystem{Positions: positions})
	scheduler.Register(&CleanupSystem{Positions: positions})

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "CleanupSystem", stats.Systems[1].Name)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for i := 0; i < 5; i++ {
		scheduler.Once(1.0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(10), stats.TotalExecutions)
	assert.Equal(t, uint64(5), stats.Frames)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
	}
}

func TestSchedulerStatsSnapshot(t *testing.T) {
	scheduler := ecs.NewScheduler()
	scheduler.Register(&MovementSystem{Positions: ecs.NewPool[Position]()})

	for i := 0; i < 3; i++ {
		scheduler.Once(1.0)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, scheduler.Tick(), stats.Frames)
	require.Len(t, stats.Systems, 1)
	sys := stats.Systems[0]
	assert.LessOrEqual(t, sys.MinDuration, sys.LastDuration)
	assert.LessOrEqual(t, sys.LastDuration, sys.MaxDuration)
	assert.Equal(t, sys.TotalDuration/3, sys.AvgDuration)

	stats.Systems[0].ExecutionCount = 100
	assert.Equal(t, int64(3), scheduler.GetStats().Systems[0].ExecutionCount)

	scheduler.Once(1.0)
	assert.Equal(t, uint64(3), stats.Frames)
	assert.Equal(t, uint64(4), scheduler.GetStats().Frames)
}
