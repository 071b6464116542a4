package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats is a snapshot of scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	// Frames counts completed calls to Once.
	Frames  uint64
	Systems []SystemStats
}

// SystemStats accumulates execution timings for a single system.
// MinDuration and AvgDuration are zero until the system has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

func (s *SystemStats) record(d time.Duration) {
	if s.ExecutionCount == 0 || d < s.MinDuration {
		s.MinDuration = d
	}
	s.MaxDuration = max(s.MaxDuration, d)
	s.LastDuration = d
	s.TotalDuration += d
	s.ExecutionCount++
	s.AvgDuration = s.TotalDuration / time.Duration(s.ExecutionCount)
}

type scheduledSystem struct {
	system System
	stats  SystemStats
}

// Scheduler runs systems in registration order, one frame per call to Once.
type Scheduler struct {
	systems []*scheduledSystem
	frames  uint64
}

// NewScheduler creates a scheduler with no systems.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// systemName returns the name of the system's type, looking through pointers.
func systemName(system System) string {
	t := reflect.TypeOf(system)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, &scheduledSystem{
		system: system,
		stats:  SystemStats{Name: systemName(system)},
	})
}

// Tick returns the number of frames executed so far, which is also the tick
// of the next frame.
func (s *Scheduler) Tick() uint64 {
	return s.frames
}

// Once runs every system with a frame of duration dt, then flushes the
// frame's deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(s.frames, dt)

	for _, entry := range s.systems {
		start := time.Now()
		entry.system.Execute(frame)
		entry.stats.record(time.Since(start))
	}

	frame.Commands.Flush()
	s.frames++
}

// Run calls Once on every tick of interval, passing the measured wall time
// since the previous tick, until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a copy of the accumulated statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, 0, len(s.systems)),
	}
	for _, entry := range s.systems {
		stats.Systems = append(stats.Systems, entry.stats)
		stats.TotalExecutions += entry.stats.ExecutionCount
	}
	return stats
}
