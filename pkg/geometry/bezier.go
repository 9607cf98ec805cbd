package geometry

import (
	"math"
)

// Cubic is one cubic Bézier segment.
type Cubic struct {
	C0, C1, C2, C3 Point
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// Bezier evaluates the Bézier curve with the given control points at t.
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func Bezier(t float32, points ...Point) Point {
	var result Point

	for i := 0; i < len(points); i++ {
		d := float32(factorial(len(points)-1)) /
			float32(factorial(i)*factorial(len(points)-1-i)) *
			(float32(math.Pow(float64(t), float64(i))) *
				(float32(math.Pow(float64(1-t), float64(len(points)-1-i)))))
		result.X += points[i].X * d
		result.Y += points[i].Y * d
	}

	return result
}

// At evaluates c at t.
func (c Cubic) At(t float32) Point {
	return Bezier(t, c.C0, c.C1, c.C2, c.C3)
}

// LineControls returns the inner control points of a cubic that traces
// the straight line from p0 to p1 with uniform speed.
func LineControls(p0, p1 Point) (c1, c2 Point) {
	d := p1.Sub(p0).Div(3)
	return p0.Add(d), p1.Sub(d)
}
