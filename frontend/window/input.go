package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/dashshot/game"
)

type inputSource interface {
	KeyPressed(key ebiten.Key) bool
	KeyJustPressed(key ebiten.Key) bool
	MousePressed(button ebiten.MouseButton) bool
}

type ebitenInput struct{}

func (ebitenInput) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) MousePressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

// readInput samples the keyboard and mouse. Mouse buttons are ignored
// while the debug overlay has the mouse.
func readInput(src inputSource, now time.Duration, mouseCaptured bool) (game.Input, bool) {
	if src.KeyJustPressed(ebiten.KeyEscape) {
		return game.Input{}, true
	}

	in := game.Input{
		Now:     now,
		Left:    src.KeyPressed(ebiten.KeyA),
		Right:   src.KeyPressed(ebiten.KeyD),
		Up:      src.KeyPressed(ebiten.KeyW),
		Down:    src.KeyPressed(ebiten.KeyS),
		Restart: src.KeyJustPressed(ebiten.KeyR),
	}
	if !mouseCaptured {
		in.Fire = src.MousePressed(ebiten.MouseButtonLeft)
		in.Dash = src.MousePressed(ebiten.MouseButtonRight)
	}
	return in, false
}
