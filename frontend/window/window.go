// Package window runs the game in an ebiten window, fullscreen by default.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/dashshot/config"
	"github.com/plus3/dashshot/ecs"
	"github.com/plus3/dashshot/ecs/debugui"
	debugui_ebiten "github.com/plus3/dashshot/ecs/debugui/ebiten"
	"github.com/plus3/dashshot/game"
	"github.com/plus3/dashshot/geom"
)

// Game implements ebiten.Game around a game.World.
type Game struct {
	world   *game.World
	start   time.Time
	keys    inputSource
	overlay debugui_ebiten.Overlay
	capture *ecs.Singleton[debugui.ImguiInputState]
}

// New creates the world and, when cfg.Debug is set, the Dear ImGui
// overlay. The world is sized to the monitor when fullscreen.
func New(cfg config.Config) *Game {
	var m monitor
	if current := ebiten.Monitor(); current != nil {
		m = current
	}
	width, height := worldSize(cfg, m)

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	debugui_ebiten.RegisterComponents(registry)

	world := game.NewWorld(game.Options{
		Width:    width,
		Height:   height,
		Seed:     cfg.Seed,
		Registry: registry,
	})

	g := &Game{
		world: world,
		start: time.Now(),
		keys:  ebitenInput{},
	}

	if cfg.Debug {
		g.overlay = debugui_ebiten.NewOverlay(world.Storage, debugui_ebiten.NewImguiBackend(cfg.Title, width, height))
		world.Register(&debugui.ImguiSystem{})
		debugui.SpawnDebugUI(world.Storage,
			debugui.StatsSource{Name: "update", Stats: world.UpdateStats},
			debugui.StatsSource{Name: "draw", Stats: world.DrawStats},
		)
	}
	g.capture = ecs.NewSingleton[debugui.ImguiInputState](world.Storage)

	return g
}

// Run opens the window and blocks until the player quits.
func Run(cfg config.Config) error {
	g := New(cfg)
	screen := g.world.Screen()

	ebiten.SetTPS(ebiten.DefaultTPS)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	in, quit := readInput(g.keys, time.Since(g.start), g.wantsMouse())
	if quit {
		return ebiten.Termination
	}

	g.overlay.BeginFrame()
	g.world.Update(in)
	g.overlay.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(imageCanvas{dst: screen})
	g.overlay.Draw(screen)
}

// Layout keeps the logical screen at the size chosen at startup.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	screen := g.world.Screen()
	return screen.Width, screen.Height
}

func (g *Game) wantsMouse() bool {
	if !g.overlay.Enabled() {
		return false
	}
	return g.capture.Get().WantCaptureMouse
}

type monitor interface {
	Size() (int, int)
}

func worldSize(cfg config.Config, m monitor) (int, int) {
	if cfg.Fullscreen && m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	return cfg.Width, cfg.Height
}

// imageCanvas draws filled rectangles onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear(clr color.RGBA) {
	c.dst.Fill(clr)
}

func (c imageCanvas) FillRect(r geom.Rect, clr color.RGBA) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
