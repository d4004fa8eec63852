// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Panels are plain render functions queued by an ImguiSystem, so they draw
// after the stage's systems have finished mutating the world.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame. Hosts check it before forwarding input to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of its stage
// and refreshes Input.
type ImguiSystem[W any] struct {
	Items []ImguiItem
	Input ImguiInputState

	// IO reports the capture state. Nil reads it from the current ImGui context.
	IO func() ImguiInputState
}

// Add appends a render function.
func (s *ImguiSystem[W]) Add(render func()) {
	s.Items = append(s.Items, ImguiItem{Render: render})
}

func (s *ImguiSystem[W]) Execute(frame *ecs.UpdateFrame[W]) {
	io := s.IO
	if io == nil {
		io = currentIO
	}
	s.Input = io()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

func currentIO() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
