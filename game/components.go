package game

import (
	"time"

	"github.com/plus3/dashshot/geom"
)

// Body is the shared shape of every moving entity. Inactive bodies are
// logically dead: they are skipped by movement, collision and rendering
// and are removed at the end of the frame.
type Body struct {
	Rect   geom.Rect
	Active bool
}

type Bullet struct {
	Body
}

type Enemy struct {
	Body
}

// Screen is the logical play field size, fixed when the world is created.
type Screen struct {
	Width, Height int
}

// Input is the per-frame input snapshot handed to World.Update.
type Input struct {
	// Now is the monotonic time since the program started.
	Now time.Duration

	Left, Right, Up, Down bool
	Fire                  bool
	Dash                  bool
	// Restart is an edge: true only on the frame the key went down.
	Restart bool
}

// State is the world singleton holding everything except the entity pools.
type State struct {
	Player   geom.Rect
	Lives    int
	GameOver bool
	// Frozen is set when the frame began in game over; gameplay systems
	// do nothing on such frames.
	Frozen bool

	Dashing   bool
	DashStart time.Duration
	LastDash  time.Duration
	LastShot  time.Duration

	// SpawnCounter counts frames since the last enemy spawn.
	SpawnCounter int
}

// Tally counts gameplay events for the debug overlay and simulation
// reports. It has no influence on play.
type Tally struct {
	Frames           int64
	Games            int
	ShotsFired       int
	Dashes           int
	EnemiesSpawned   int
	EnemiesDestroyed int
	EnemiesEscaped   int
}
