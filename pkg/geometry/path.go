package geometry

import (
	"image/color"
)

// Span addresses a contiguous run of points by index.
// It stays valid however often the store grows.
type Span struct {
	Start, Len int
}

// Path is one run of powered motion: a start point followed by
// three points (two controls and an end point) per segment.
type Path struct {
	Span
	Bounds Bounds
	// Power is the laser power in percent when the run started.
	Power float32
}

// Segments returns the number of cubic segments.
func (p Path) Segments() int {
	if p.Len < 1 {
		return 0
	}

	return (p.Len - 1) / 3
}

// Style is how all paths of a shape are drawn.
type Style struct {
	Stroke      color.Color
	StrokeWidth float32
	// Fill is nil for unfilled shapes.
	Fill color.Color
}

// Shape is every path extracted from one file.
type Shape struct {
	Paths  []Path
	Bounds Bounds
	Style  Style
	points []Point
}

// Points returns the points of p.
func (s *Shape) Points(p Path) []Point {
	return s.points[p.Start : p.Start+p.Len]
}

// Cubics returns the segments of p.
func (s *Shape) Cubics(p Path) []Cubic {
	pts := s.Points(p)
	if len(pts) == 0 {
		return nil
	}

	result := make([]Cubic, 0, p.Segments())
	for i := 1; i+2 < len(pts); i += 3 {
		result = append(result, Cubic{pts[i-1], pts[i], pts[i+1], pts[i+2]})
	}

	return result
}

// Translate moves every point by d.
func (s *Shape) Translate(d Point) {
	for i := range s.points {
		s.points[i] = s.points[i].Add(d)
	}
}

// UpdateBounds recomputes the bounds of each path and of the shape.
// Only segment end points are sampled: the controls of a straight
// segment never leave the box of its end points.
func (s *Shape) UpdateBounds() {
	s.Bounds = EmptyBounds()
	for i := range s.Paths {
		p := &s.Paths[i]
		pts := s.Points(*p)

		p.Bounds = EmptyBounds()
		for j := 0; j < len(pts); j += 3 {
			p.Bounds.Include(pts[j])
		}

		if len(pts) > 0 {
			p.Bounds.Include(pts[len(pts)-1])
		}

		s.Bounds.Union(p.Bounds)
	}
}
