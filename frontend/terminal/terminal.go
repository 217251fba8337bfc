// Package terminal runs the game inside a terminal using tcell. The
// logical play field is scaled down into character cells.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/dashshot/config"
	"github.com/plus3/dashshot/game"
)

// Run takes over the terminal and blocks until the player quits.
func Run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	world := game.NewWorld(game.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
	})
	loop(screen, world, time.NewTicker(game.FrameTime))
	return nil
}

func loop(screen tcell.Screen, world *game.World, ticker *time.Ticker) {
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	screenSize := world.Screen()
	canvas := NewCanvas(screen, screenSize.Width, screenSize.Height)
	controls := &Controls{}
	start := time.Now()

	for {
		select {
		case ev := <-events:
			controls.Handle(ev, time.Now())
			if controls.Quit() {
				return
			}
			if controls.TakeResize() {
				screen.Sync()
			}

		case now := <-ticker.C:
			world.Update(controls.Input(now, now.Sub(start)))
			world.Draw(canvas)
			screen.Show()
		}
	}
}
