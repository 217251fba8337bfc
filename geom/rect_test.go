package geom_test

import (
	"testing"

	"github.com/plus3/dashshot/geom"
	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Rect
		want bool
	}{
		{"identical", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"contained", geom.Rect{X: 0, Y: 0, W: 100, H: 100}, geom.Rect{X: 40, Y: 40, W: 5, H: 5}, true},
		{"partial overlap", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"one pixel column", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 9, Y: 0, W: 10, H: 10}, true},
		{"one pixel corner", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 9, Y: 9, W: 10, H: 10}, true},
		{"touching right edge", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"disjoint", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 50, Y: 50, W: 10, H: 10}, false},
		{"overlapping x only", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 5, Y: 20, W: 10, H: 10}, false},
		{"zero width", geom.Rect{X: 0, Y: 0, W: 0, H: 10}, geom.Rect{X: 0, Y: 0, W: 10, H: 10}, false},
		{"negative height", geom.Rect{X: 0, Y: 0, W: 10, H: -5}, geom.Rect{X: 0, Y: -5, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geom.Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, geom.Intersects(tt.b, tt.a), "intersection must be symmetric")
		})
	}
}

func TestIntersectsFarTranslation(t *testing.T) {
	a := geom.Rect{X: 100, Y: 100, W: 80, H: 60}
	b := geom.Rect{X: 100, Y: 100, W: 10, H: 40}

	for _, d := range [][2]int{{1000, 0}, {-1000, 0}, {0, 1000}, {0, -1000}, {500, 500}} {
		moved := b.Translate(d[0], d[1])
		assert.False(t, geom.Intersects(a, moved), "translated by %v", d)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, geom.Clamp(-20, 0, 700))
	assert.Equal(t, 700, geom.Clamp(760, 0, 700))
	assert.Equal(t, 350, geom.Clamp(350, 0, 700))
	assert.Equal(t, 0, geom.Clamp(5, 0, -20))
}
