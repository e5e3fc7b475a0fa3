package ui

import "math"

// Rect is an axis-aligned integer rectangle.
type Rect struct {
	X, Y, W, H int
}

// Unclipped is the clip rect meaning "no restriction". Its extent is kept at
// MaxInt32 so X+W never overflows.
var Unclipped = Rect{0, 0, math.MaxInt32, math.MaxInt32}

func NewRect(x, y, w, h int) Rect { return Rect{x, y, w, h} }

func (r Rect) IsUnclipped() bool { return r == Unclipped }

// Intersect returns the overlap of r and o; ok is false when they don't overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}, true
}

// Expand grows r by n on every side (shrinks when n < 0).
func (r Rect) Expand(n int) Rect {
	return Rect{r.X - n, r.Y - n, r.W + n*2, r.H + n*2}
}

// Contains is the hit test: left/top edges inclusive, right/bottom exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
