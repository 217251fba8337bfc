// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/dashshot/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It is stored as a singleton so the frontend can bracket each update with
// BeginFrame and EndFrame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the Dear ImGui context for an Ebiten window of the
// given size. The imgui.ini file is disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// RegisterComponents adds ImguiBackend to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiBackend](registry)
}

// Overlay draws the Dear ImGui frame on top of screen and tracks the
// window size. A zero Overlay does nothing, so frontends can hold one
// unconditionally.
type Overlay struct {
	backend *ecs.Singleton[ImguiBackend]
}

// NewOverlay stores backend as a singleton in storage and returns an
// Overlay bound to it.
func NewOverlay(storage *ecs.Storage, backend ImguiBackend) Overlay {
	return Overlay{backend: ecs.NewSingleton[ImguiBackend](storage, backend)}
}

func (o Overlay) get() *ImguiBackend {
	if o.backend == nil {
		return nil
	}
	b := o.backend.Get()
	if b == nil || b.EbitenBackend == nil {
		return nil
	}
	return b
}

// Enabled reports whether the overlay has a backend.
func (o Overlay) Enabled() bool {
	return o.get() != nil
}

func (o Overlay) BeginFrame() {
	if b := o.get(); b != nil {
		b.BeginFrame()
	}
}

func (o Overlay) EndFrame() {
	if b := o.get(); b != nil {
		b.EndFrame()
	}
}

func (o Overlay) Draw(screen *ebiten.Image) {
	if b := o.get(); b != nil {
		b.Draw(screen)
	}
}

func (o Overlay) Layout(width, height int) {
	if b := o.get(); b != nil {
		b.Layout(width, height)
	}
}
