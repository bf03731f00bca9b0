package gamemath

import "math"

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// OverlapX returns the length of the horizontal overlap between r and o.
func (r Rect) OverlapX(o Rect) float64 {
	return math.Max(0, math.Min(r.Right(), o.Right())-math.Max(r.Left(), o.Left()))
}

// OverlapY returns the length of the vertical overlap between r and o.
func (r Rect) OverlapY(o Rect) float64 {
	return math.Max(0, math.Min(r.Bottom(), o.Bottom())-math.Max(r.Top(), o.Top()))
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}
