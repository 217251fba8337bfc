package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/dashshot/geom"
)

// Surface is the part of tcell.Screen the canvas draws onto.
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Canvas scales the logical play field onto the cells of a Surface.
// Every non-empty rect covers at least one cell.
type Canvas struct {
	surface       Surface
	width, height int
}

func NewCanvas(surface Surface, width, height int) *Canvas {
	return &Canvas{surface: surface, width: max(width, 1), height: max(height, 1)}
}

func (c *Canvas) Clear(clr color.RGBA) {
	cols, rows := c.surface.Size()
	style := cellStyle(clr)
	for y := range rows {
		for x := range cols {
			c.surface.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (c *Canvas) FillRect(r geom.Rect, clr color.RGBA) {
	cols, rows := c.surface.Size()
	cells, ok := c.Cells(r, cols, rows)
	if !ok {
		return
	}

	style := cellStyle(clr)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			c.surface.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Cells maps a logical rect onto a cols x rows grid, clipped to the grid.
// It reports false when nothing remains to draw.
func (c *Canvas) Cells(r geom.Rect, cols, rows int) (geom.Rect, bool) {
	if r.Empty() || cols <= 0 || rows <= 0 {
		return geom.Rect{}, false
	}

	x0, x1 := scaleSpan(r.X, r.Right(), c.width, cols)
	y0, y1 := scaleSpan(r.Y, r.Bottom(), c.height, rows)

	cells := geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	grid := geom.Rect{W: cols, H: rows}
	if !geom.Intersects(cells, grid) {
		return geom.Rect{}, false
	}

	x0 = geom.Clamp(x0, 0, cols)
	y0 = geom.Clamp(y0, 0, rows)
	x1 = geom.Clamp(x1, 0, cols)
	y1 = geom.Clamp(y1, 0, rows)
	return geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// scaleSpan maps [lo, hi) in a logical extent onto cells, rounding the
// start down and the end up.
func scaleSpan(lo, hi, extent, cells int) (int, int) {
	start := floorDiv(lo*cells, extent)
	end := -floorDiv(-hi*cells, extent)
	if end <= start {
		end = start + 1
	}
	return start, end
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func cellStyle(clr color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
}
