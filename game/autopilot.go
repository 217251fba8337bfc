package game

import "time"

// Autopilot plays the game from a World snapshot. It chases the enemy
// closest to the bottom of the screen, fires continuously and restarts
// after a game over. The simulation command uses it to exercise every
// system without a human.
type Autopilot struct {
	// DashDistance is the horizontal gap beyond which the pilot dashes.
	// Zero disables dashing.
	DashDistance int
}

// Input returns the controls for the frame at now.
func (a Autopilot) Input(w *World, now time.Duration) Input {
	st := w.State()
	in := Input{Now: now}
	if st.GameOver {
		in.Restart = true
		return in
	}

	in.Fire = true

	target, ok := lowestEnemy(w.Enemies())
	if !ok {
		return in
	}

	gap := (target.Rect.X + target.Rect.W/2) - (st.Player.X + st.Player.W/2)
	switch {
	case gap < 0:
		in.Left = true
	case gap > 0:
		in.Right = true
	}
	if a.DashDistance > 0 && abs(gap) > a.DashDistance {
		in.Dash = true
	}
	return in
}

func lowestEnemy(enemies []Enemy) (Enemy, bool) {
	var (
		best  Enemy
		found bool
	)
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		if !found || e.Rect.Y > best.Rect.Y {
			best = e
			found = true
		}
	}
	return best, found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
