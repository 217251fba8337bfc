package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/dashshot/game"
	"github.com/plus3/dashshot/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSurface records the background color of every cell written.
type MockSurface struct {
	width, height int
	cells         map[[2]int]tcell.Color
}

func newMockSurface(width, height int) *MockSurface {
	return &MockSurface{width: width, height: height, cells: make(map[[2]int]tcell.Color)}
}

func (m *MockSurface) Size() (int, int) {
	return m.width, m.height
}

func (m *MockSurface) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	_, bg, _ := style.Decompose()
	m.cells[[2]int{x, y}] = bg
}

func (m *MockSurface) count(c tcell.Color) int {
	n := 0
	for _, bg := range m.cells {
		if bg == c {
			n++
		}
	}
	return n
}

func TestCanvasCells(t *testing.T) {
	canvas := NewCanvas(newMockSurface(80, 24), 800, 240)

	tests := []struct {
		name string
		rect geom.Rect
		want geom.Rect
		ok   bool
	}{
		{"aligned", geom.Rect{X: 100, Y: 20, W: 100, H: 40}, geom.Rect{X: 10, Y: 2, W: 10, H: 4}, true},
		{"rounds outward", geom.Rect{X: 105, Y: 25, W: 10, H: 10}, geom.Rect{X: 10, Y: 2, W: 2, H: 2}, true},
		{"tiny is one cell", geom.Rect{X: 1, Y: 1, W: 1, H: 1}, geom.Rect{X: 0, Y: 0, W: 1, H: 1}, true},
		{"clipped", geom.Rect{X: 750, Y: -20, W: 100, H: 40}, geom.Rect{X: 75, Y: 0, W: 5, H: 2}, true},
		{"off screen", geom.Rect{X: 0, Y: -100, W: 10, H: 40}, geom.Rect{}, false},
		{"empty", geom.Rect{X: 10, Y: 10}, geom.Rect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := canvas.Cells(tt.rect, 80, 24)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanvasDrawsWorld(t *testing.T) {
	surface := newMockSurface(80, 30)
	world := game.NewWorld(game.Options{Width: 800, Height: 600, Seed: 1})

	world.Draw(NewCanvas(surface, 800, 600))

	green := tcell.NewRGBColor(0, 255, 0)
	red := tcell.NewRGBColor(255, 0, 0)
	black := tcell.NewRGBColor(0, 0, 0)

	assert.Len(t, surface.cells, 80*30, "clear touches every cell")
	// Player 100x100 at (350, 490) covers columns 35..45 and rows 24..30.
	assert.Equal(t, 10*6, surface.count(green))
	// Three life squares of 20x20 logical pixels.
	assert.Equal(t, 3*2*1, surface.count(red))
	assert.Positive(t, surface.count(black))
}

func TestControlsHoldWindow(t *testing.T) {
	var c Controls
	start := time.Unix(100, 0)

	c.Handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), start)
	c.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), start)
	c.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), start)

	in := c.Input(start.Add(50*time.Millisecond), time.Second)
	assert.Equal(t, time.Second, in.Now)
	assert.True(t, in.Left)
	assert.True(t, in.Up)
	assert.True(t, in.Fire)
	assert.False(t, in.Right)
	assert.False(t, in.Dash)

	in = c.Input(start.Add(keyHoldDuration), time.Second)
	assert.False(t, in.Left, "released once the hold window passes")
	assert.False(t, in.Fire)
}

func TestControlsRestartIsEdge(t *testing.T) {
	var c Controls
	now := time.Unix(100, 0)

	c.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now)
	assert.True(t, c.Input(now, 0).Restart)
	assert.False(t, c.Input(now, 0).Restart)
}

func TestControlsMouseButtons(t *testing.T) {
	var c Controls
	now := time.Unix(100, 0)

	c.Handle(tcell.NewEventMouse(5, 5, tcell.Button1|tcell.Button2, tcell.ModNone), now)
	in := c.Input(now.Add(time.Hour), 0)
	assert.True(t, in.Fire, "mouse buttons stay held until released")
	assert.True(t, in.Dash)

	c.Handle(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone), now)
	in = c.Input(now, 0)
	assert.False(t, in.Fire)
	assert.False(t, in.Dash)
}

func TestControlsQuitAndResize(t *testing.T) {
	var c Controls
	now := time.Unix(100, 0)

	c.Handle(tcell.NewEventResize(100, 40), now)
	require.False(t, c.Quit())
	assert.True(t, c.TakeResize())
	assert.False(t, c.TakeResize())

	c.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now)
	assert.True(t, c.Quit())
}
