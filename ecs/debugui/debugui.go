// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Windows are stored as ImguiItem entities and rendered by ImguiSystem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/inkball/ecs"
)

// ImguiItem holds a Dear ImGui render function.
// Spawn one into the pool handed to ImguiSystem for every window to draw.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every ImguiItem and refreshes
// the shared ImguiInputState.
type ImguiSystem struct {
	Items      *ecs.Pool[ImguiItem]
	InputState *ImguiInputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if i.InputState != nil {
		io := imgui.CurrentIO()
		i.InputState.WantCaptureMouse = io.WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range i.Items.Iter() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// Window is anything that draws a single ImGui window.
type Window interface {
	Render()
}

// Spawn adds one ImguiItem per window and returns their handles.
func Spawn(items *ecs.Pool[ImguiItem], windows ...Window) []ecs.EntityId {
	ids := make([]ecs.EntityId, 0, len(windows))
	for _, w := range windows {
		ids = append(ids, items.Spawn(ImguiItem{Render: w.Render}))
	}
	return ids
}
