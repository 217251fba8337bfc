package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/dashshot/ecs"
	"github.com/plus3/dashshot/ecs/debugui"
	debugui_ebiten "github.com/plus3/dashshot/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scheduler *ecs.Scheduler
	overlay   debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.overlay.BeginFrame()

	// Execute all ECS systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.overlay.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	debugui_ebiten.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	overlay := debugui_ebiten.NewOverlay(storage, debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720))

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})
	debugui.SpawnDebugUI(storage, debugui.StatsSource{Name: "update", Stats: scheduler.Stats})

	if err := ebiten.RunGame(&Game{scheduler: scheduler, overlay: overlay}); err != nil {
		panic(err)
	}
}
