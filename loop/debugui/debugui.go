// Package debugui provides an immediate-mode debug overlay for the game
// loop using Dear ImGui. Panels are plain render functions queued by
// ImguiSystem and drawn after all systems of a frame have run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ferrisblocks/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Systems that read input should skip the frame while it does.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes the input capture state and defers every item's
// render function to the end of the frame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

// NewImguiSystem returns a system with an empty item list.
func NewImguiSystem() *ImguiSystem {
	return &ImguiSystem{InputState: &ImguiInputState{}}
}

// Add appends a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
