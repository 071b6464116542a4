package inkball

import (
	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/geom"
)

type EventKind int

const (
	EventSpawned EventKind = iota
	EventCaptured
	EventPenalized
	EventRecolored
	EventBrickDestroyed
	EventStrokeConsumed
	EventLevelCompleted
)

var eventKindNames = [...]string{
	"spawned",
	"captured",
	"penalized",
	"recolored",
	"brick-destroyed",
	"stroke-consumed",
	"level-completed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// EventKinds lists every event kind in declaration order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, len(eventKindNames))
	for i := range kinds {
		kinds[i] = EventKind(i)
	}
	return kinds
}

// Event records something observable that happened during a frame.
type Event struct {
	Kind     EventKind
	Tick     uint64
	Ball     ecs.EntityId
	Color    Color
	Points   int
	Position geom.Vec2
}

// publish queues the event so it becomes visible once the frame has finished.
func (l *Level) publish(frame *ecs.UpdateFrame, ev Event) {
	ev.Tick = frame.Tick
	frame.Commands.Defer(func() {
		l.events = append(l.events, ev)
	})
}
