package ecs

// Commands provides a buffer for deferred operations that are executed at the end of a frame.
// Systems use it for side effects that must not be observed by later systems in the same frame,
// such as event publication or debug rendering.
type Commands struct {
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued operation in queue order, reseting the buffer state.
// Operations queued while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i].fn()
	}
	c.defers = c.defers[:0]
}
