package ecs_test

import (
	"fmt"

	"github.com/plus3/inkball/ecs"
)

type ReportSystem struct {
	Bodies *ecs.Pool[Body]
}

func (s *ReportSystem) Execute(frame *ecs.UpdateFrame) {
	count := s.Bodies.Len()
	frame.Commands.Defer(func() {
		fmt.Printf("Frame %d saw %d bodies\n", frame.Tick, count)
	})
}

// ExampleCommands demonstrates deferring side effects to the end of a frame.
// Deferred operations run after every system has executed, in the order they
// were queued, which keeps reporting out of the simulation step.
func ExampleCommands() {
	bodies := ecs.NewPool[Body]()
	bodies.Spawn(Body{Transform{0, 0}, Speed{1, 0}})
	bodies.Spawn(Body{Transform{50, 0}, Speed{100, 0}})

	scheduler := ecs.NewScheduler()
	scheduler.Register(&ReportSystem{Bodies: bodies})
	scheduler.Register(&PhysicsSystem{Bodies: bodies})
	scheduler.Register(&BoundsSystem{Bodies: bodies, Limit: 100})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	// Output:
	// Frame 0 saw 2 bodies
	// Frame 1 saw 1 bodies
}
