package game

import (
	"testing"
	"time"

	"github.com/plus3/dashshot/ecs"
	"github.com/plus3/dashshot/geom"
	"github.com/stretchr/testify/assert"
)

func TestAutopilotChasesLowestEnemy(t *testing.T) {
	w := NewWorld(Options{Width: 800, Height: 600, Seed: 1})
	w.Storage.Spawn(Enemy{Body{Rect: geom.Rect{X: 700, Y: 10, W: 80, H: 60}, Active: true}})
	w.Storage.Spawn(Enemy{Body{Rect: geom.Rect{X: 0, Y: 200, W: 80, H: 60}, Active: true}})
	w.Storage.Spawn(Enemy{Body{Rect: geom.Rect{X: 700, Y: 400, W: 80, H: 60}, Active: false}})

	in := Autopilot{DashDistance: 200}.Input(w, time.Second)
	assert.Equal(t, time.Second, in.Now)
	assert.True(t, in.Fire)
	assert.True(t, in.Left)
	assert.False(t, in.Right)
	assert.True(t, in.Dash, "target is more than 200px away")
	assert.False(t, in.Restart)
}

func TestAutopilotWithoutEnemies(t *testing.T) {
	w := NewWorld(Options{Width: 800, Height: 600, Seed: 1})

	in := Autopilot{}.Input(w, 0)
	assert.True(t, in.Fire)
	assert.False(t, in.Left || in.Right || in.Up || in.Down || in.Dash)
}

func TestAutopilotRestartsAfterGameOver(t *testing.T) {
	w := NewWorld(Options{Width: 800, Height: 600, Seed: 1})
	ecs.NewSingleton[State](w.Storage).Get().GameOver = true

	in := Autopilot{}.Input(w, 0)
	assert.True(t, in.Restart)
	assert.False(t, in.Fire)

	w.Update(in)
	assert.False(t, w.State().GameOver)
	assert.Equal(t, 3, w.State().Lives)
}

func TestAutopilotPlays(t *testing.T) {
	w := NewWorld(Options{Width: 800, Height: 600, Seed: 7})
	pilot := Autopilot{DashDistance: 300}

	for frame := range 3600 {
		now := time.Duration(frame) * FrameTime
		w.Update(pilot.Input(w, now))
	}

	tally := w.Tally()
	assert.Equal(t, int64(3600), tally.Frames)
	assert.Positive(t, tally.ShotsFired)
	assert.Positive(t, tally.EnemiesSpawned)
	assert.Positive(t, tally.EnemiesDestroyed)
}
