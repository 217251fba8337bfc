// Package debugui provides Dear ImGui panels for inspecting a running ECS
// world: frame timing, scheduler timings, pools and editable singletons.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dashshot/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Spawn one per window that should render each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Frontends consult it so clicks on a debug window do not fire the gun.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every ImguiItem render
// function to the end of the frame.
type ImguiSystem struct {
	Items      ecs.Query[ImguiItem]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	if state == nil {
		frame.Storage.AddSingleton(ImguiInputState{})
		state = i.InputState.Get()
	}
	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}
