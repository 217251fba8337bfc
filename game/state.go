package game

import "github.com/plus3/dashshot/geom"

// NewState returns the state of a fresh game on a width x height field:
// the player centered horizontally just above the bottom edge, full lives,
// and the fire and dash timers primed so both are available immediately.
func NewState(width, height int, t Tuning) State {
	return State{
		Player: geom.Rect{
			X: width/2 - t.PlayerSize/2,
			Y: height - t.PlayerSize - t.BottomMargin,
			W: t.PlayerSize,
			H: t.PlayerSize,
		},
		Lives:    t.StartingLives,
		LastDash: -t.DashCooldown,
		LastShot: -t.FireCooldown,
	}
}

// restart returns state to a new game while keeping the dash and fire
// timers and the spawn counter running.
func restart(st *State, screen Screen, t Tuning) {
	fresh := NewState(screen.Width, screen.Height, t)
	st.Player = fresh.Player
	st.Lives = fresh.Lives
	st.GameOver = false
}
