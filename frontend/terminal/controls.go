package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/dashshot/game"
)

// keyHoldDuration is how long a key counts as held after its last event.
// Terminals only report presses and auto-repeat, never releases.
const keyHoldDuration = 150 * time.Millisecond

type control int

const (
	controlLeft control = iota
	controlRight
	controlUp
	controlDown
	controlFire
	controlDash
	controlCount
)

// Controls turns a stream of tcell events into per-frame game input.
type Controls struct {
	lastSeen [controlCount]time.Time
	fire     bool
	dash     bool
	restart  bool
	quit     bool
	resized  bool
}

// Handle records ev, seen at now.
func (c *Controls) Handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev, now)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		c.fire = buttons&tcell.Button1 != 0
		c.dash = buttons&tcell.Button2 != 0
	case *tcell.EventResize:
		c.resized = true
	}
}

func (c *Controls) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
	case tcell.KeyLeft:
		c.lastSeen[controlLeft] = now
	case tcell.KeyRight:
		c.lastSeen[controlRight] = now
	case tcell.KeyUp:
		c.lastSeen[controlUp] = now
	case tcell.KeyDown:
		c.lastSeen[controlDown] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			c.lastSeen[controlLeft] = now
		case 'd', 'D':
			c.lastSeen[controlRight] = now
		case 'w', 'W':
			c.lastSeen[controlUp] = now
		case 's', 'S':
			c.lastSeen[controlDown] = now
		case ' ':
			c.lastSeen[controlFire] = now
		case 'e', 'E':
			c.lastSeen[controlDash] = now
		case 'r', 'R':
			c.restart = true
		}
	}
}

// Quit reports whether a quit key was pressed.
func (c *Controls) Quit() bool {
	return c.quit
}

// TakeResize reports and clears a pending resize.
func (c *Controls) TakeResize() bool {
	resized := c.resized
	c.resized = false
	return resized
}

// Input builds the input for the frame starting at now. elapsed is the
// time since the game started. The restart edge is consumed.
func (c *Controls) Input(now time.Time, elapsed time.Duration) game.Input {
	held := func(ctl control) bool {
		seen := c.lastSeen[ctl]
		return !seen.IsZero() && now.Sub(seen) < keyHoldDuration
	}

	in := game.Input{
		Now:     elapsed,
		Left:    held(controlLeft),
		Right:   held(controlRight),
		Up:      held(controlUp),
		Down:    held(controlDown),
		Fire:    c.fire || held(controlFire),
		Dash:    c.dash || held(controlDash),
		Restart: c.restart,
	}
	c.restart = false
	return in
}
