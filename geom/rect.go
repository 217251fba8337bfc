// Package geom provides integer axis-aligned rectangles in screen space.
package geom

// Rect is an axis-aligned bounding box in pixel coordinates.
// X and Y name the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether a and b share a non-zero area.
// Ranges are half-open, so rectangles that only touch along an edge do not
// intersect while a single shared pixel column or row does.
func Intersects(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
