package ecs

type UpdateFrame struct {
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
}

func newUpdateFrame(tick uint64, dt float64) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
