// Package geometry turns powered laser moves into stroked cubic paths.
package geometry

import "math"

// Point is a 2D position in millimeters (or pixels after layout).
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{x, y}
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Div(s float32) Point {
	return Point{p.X / s, p.Y / s}
}

// Bounds is an axis aligned box. Each axis is empty until a value was included.
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns bounds that contain nothing.
func EmptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: Point{inf, inf},
		Max: Point{-inf, -inf},
	}
}

// Empty reports whether any axis is still empty.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// IncludeX grows the X axis to contain x.
func (b *Bounds) IncludeX(x float32) {
	b.Min.X = min(b.Min.X, x)
	b.Max.X = max(b.Max.X, x)
}

// IncludeY grows the Y axis to contain y.
func (b *Bounds) IncludeY(y float32) {
	b.Min.Y = min(b.Min.Y, y)
	b.Max.Y = max(b.Max.Y, y)
}

// Include grows b to contain p.
func (b *Bounds) Include(p Point) {
	b.IncludeX(p.X)
	b.IncludeY(p.Y)
}

// Union grows b to contain o.
func (b *Bounds) Union(o Bounds) {
	if o.Empty() {
		return
	}

	b.Include(o.Min)
	b.Include(o.Max)
}

// Size returns width and height.
func (b Bounds) Size() Point {
	if b.Empty() {
		return Point{}
	}

	return b.Max.Sub(b.Min)
}
