package game

import (
	"image/color"

	"github.com/plus3/dashshot/ecs"
	"github.com/plus3/dashshot/geom"
)

// Canvas is the drawing surface a frontend hands to World.Draw.
type Canvas interface {
	Clear(c color.RGBA)
	FillRect(r geom.Rect, c color.RGBA)
}

// Target holds the canvas for the frame being drawn.
type Target struct {
	Canvas Canvas
}

// Colors of the drawn elements. Lives and the game over box share the
// enemy red.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorPlayer     = color.RGBA{0, 255, 0, 255}
	ColorBullet     = color.RGBA{255, 255, 0, 255}
	ColorEnemy      = color.RGBA{255, 0, 0, 255}
	ColorLife       = color.RGBA{255, 0, 0, 255}
	ColorGameOver   = color.RGBA{255, 0, 0, 255}
)

const (
	lifeSize    = 20
	lifeSpacing = 30
	lifeOrigin  = 20

	gameOverWidth  = 400
	gameOverHeight = 100
)

// LifeRect returns the indicator square for life i, counting from zero.
func LifeRect(i int) geom.Rect {
	return geom.Rect{X: lifeOrigin + i*lifeSpacing, Y: lifeOrigin, W: lifeSize, H: lifeSize}
}

// GameOverRect returns the centered game over placeholder box.
func GameOverRect(screen Screen) geom.Rect {
	return geom.Rect{
		X: screen.Width/2 - gameOverWidth/2,
		Y: screen.Height/2 - gameOverHeight/2,
		W: gameOverWidth,
		H: gameOverHeight,
	}
}

// RenderSystem draws the world onto the Target canvas. It never mutates
// game state.
type RenderSystem struct {
	State   ecs.Singleton[State]
	Screen  ecs.Singleton[Screen]
	Target  ecs.Singleton[Target]
	Bullets ecs.Query[Bullet]
	Enemies ecs.Query[Enemy]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	canvas := s.Target.Get().Canvas
	if canvas == nil {
		return
	}
	st := s.State.Get()

	canvas.Clear(ColorBackground)
	canvas.FillRect(st.Player, ColorPlayer)

	for bullet := range s.Bullets.Values() {
		if bullet.Active {
			canvas.FillRect(bullet.Rect, ColorBullet)
		}
	}

	for enemy := range s.Enemies.Values() {
		if enemy.Active {
			canvas.FillRect(enemy.Rect, ColorEnemy)
		}
	}

	for i := range max(st.Lives, 0) {
		canvas.FillRect(LifeRect(i), ColorLife)
	}

	if st.GameOver {
		canvas.FillRect(GameOverRect(*s.Screen.Get()), ColorGameOver)
	}
}
